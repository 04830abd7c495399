package bucketsort_test

import (
	"bytes"
	"context"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lanrat/bucketsort"
)

func TestStdLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := bucketsort.NewStdLogger(log.New(&buf, "", 0), false)
	ctx := context.Background()

	logger.Info(ctx, "sort complete", "size", 6, "nodes", 3)
	logger.Debug(ctx, "node sorting", "node", 1)
	logger.Error(ctx, "node failed", "node")

	assert.Equal(t, "INFO sort complete size=6 nodes=3\nERROR node failed node=<missing>\n", buf.String())
}

func TestStdLoggerDebug(t *testing.T) {
	var buf bytes.Buffer
	logger := bucketsort.NewStdLogger(log.New(&buf, "", 0), true)

	logger.Debug(context.Background(), "node sorting", "node", 1, "size", 0)

	assert.Equal(t, "DEBUG node sorting node=1 size=0\n", buf.String())
}

func TestStdLoggerWithSorter(t *testing.T) {
	var buf bytes.Buffer
	config := &bucketsort.Config{
		NumNodes: 2,
		Logger:   bucketsort.NewStdLogger(log.New(&buf, "", 0), true),
	}
	s, err := bucketsort.New[int](config)
	assert.NoError(t, err)

	_, err = s.Run(context.Background(), []int{2, 1})
	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "INFO partitioning input size=2 nodes=2\n")
	assert.Contains(t, buf.String(), "DEBUG node sorting node=0 size=1\n")
	assert.Contains(t, buf.String(), "DEBUG node sorting node=1 size=1\n")
	assert.Contains(t, buf.String(), "INFO sort complete size=2 nodes=2\n")
}

package threadkit_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/randalmurphal/threadkit/pkg/threadkit"
	"github.com/randalmurphal/threadkit/pkg/threadkit/config"
)

func TestWithStackSize_IgnoresNonPositive(t *testing.T) {
	reg := threadkit.NewRegistry()
	thr, err := threadkit.New(threadkit.RunnableFunc(func() {}),
		threadkit.WithRegistry(reg),
		threadkit.WithStackSize(-1),
	)
	require.NoError(t, err)
	defer thr.Close()

	assert.Equal(t, threadkit.DefaultStackSize(), thr.StackSize())
}

func TestWithDefaults(t *testing.T) {
	reg := threadkit.NewRegistry()
	d := config.Defaults{
		StackSize:    256 << 10,
		PollInterval: 2 * time.Millisecond,
	}

	thr, err := threadkit.New(threadkit.RunnableFunc(func() {}),
		threadkit.WithRegistry(reg),
		threadkit.WithDefaults(d),
	)
	require.NoError(t, err)
	defer thr.Close()

	assert.Equal(t, 256<<10, thr.StackSize())
}

func TestWithDefaults_LaterOptionsWin(t *testing.T) {
	reg := threadkit.NewRegistry()
	d := config.Defaults{StackSize: 256 << 10}

	thr, err := threadkit.New(threadkit.RunnableFunc(func() {}),
		threadkit.WithRegistry(reg),
		threadkit.WithDefaults(d),
		threadkit.WithStackSize(1<<20),
	)
	require.NoError(t, err)
	defer thr.Close()

	assert.Equal(t, 1<<20, thr.StackSize())
}

func TestWithDefaults_ZeroStackKeepsPlatformDefault(t *testing.T) {
	reg := threadkit.NewRegistry()

	thr, err := threadkit.New(threadkit.RunnableFunc(func() {}),
		threadkit.WithRegistry(reg),
		threadkit.WithDefaults(config.Default()),
	)
	require.NoError(t, err)
	defer thr.Close()

	assert.Equal(t, threadkit.DefaultStackSize(), thr.StackSize())
}

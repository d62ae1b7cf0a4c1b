// Package benchmarks holds performance benchmarks for threadkit.
package benchmarks

import (
	"testing"
	"time"

	"github.com/randalmurphal/threadkit/pkg/threadkit"
)

// BenchmarkSpawnWait measures the full lifecycle: construct, start, join, close.
func BenchmarkSpawnWait(b *testing.B) {
	reg := threadkit.NewRegistry()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		t, err := threadkit.New(threadkit.RunnableFunc(func() {}), threadkit.WithRegistry(reg))
		if err != nil {
			b.Fatal(err)
		}
		if err := t.Start(); err != nil {
			b.Fatal(err)
		}
		if err := t.Wait(); err != nil {
			b.Fatal(err)
		}
		if err := t.Close(); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkWaitTimeout_Expired measures a bounded wait that always misses.
func BenchmarkWaitTimeout_Expired(b *testing.B) {
	reg := threadkit.NewRegistry()
	release := make(chan struct{})
	t, err := threadkit.New(threadkit.RunnableFunc(func() {
		<-release
	}), threadkit.WithRegistry(reg))
	if err != nil {
		b.Fatal(err)
	}
	defer t.Close()
	if err := t.Start(); err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		t.WaitTimeout(time.Millisecond)
	}
	b.StopTimer()
	close(release)
	_ = t.Wait()
}

// BenchmarkLookupCurrent_100 measures a registry scan with 100 live threads.
func BenchmarkLookupCurrent_100(b *testing.B) {
	reg := threadkit.NewRegistry()
	release := make(chan struct{})
	for i := 0; i < 100; i++ {
		t, err := threadkit.New(threadkit.RunnableFunc(func() {
			<-release
		}), threadkit.WithRegistry(reg))
		if err != nil {
			b.Fatal(err)
		}
		defer t.Close()
		if err := t.Start(); err != nil {
			b.Fatal(err)
		}
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		reg.LookupCurrent()
	}
	b.StopTimer()
	close(release)
}

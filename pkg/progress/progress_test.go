package progress

import (
	"context"
	"testing"
	"time"

	watchable "github.com/uecasm/Mirality.WatchableValue"
)

func TestNewTracker_PublishesInitial(t *testing.T) {
	tracker := NewTracker(10)

	v := tracker.Current()
	if v.V != 10 {
		t.Errorf("expected initial value 10, got %d", v.V)
	}
	if v.Signal.Fired() {
		t.Error("expected initial snapshot's signal to be unfired")
	}
}

func TestTracker_ReportInvalidatesPrevious(t *testing.T) {
	tracker := NewTracker("a")
	prev := tracker.Current()

	tracker.Report("b")

	if !prev.Signal.Fired() {
		t.Error("expected previous snapshot's signal to fire on Report")
	}
	if cur := tracker.Current(); cur.V != "b" {
		t.Errorf("expected current 'b', got %q", cur.V)
	}
}

func TestNewNamedTracker_LabelsSnapshots(t *testing.T) {
	tracker := NewNamedTracker(0, "upload")
	tracker.Report(50)

	if got := watchable.Label(tracker.Current().Signal); got != "upload" {
		t.Errorf("expected label 'upload', got %q", got)
	}
}

func TestTracker_WatchDeliversEagerlyThenOnReport(t *testing.T) {
	tracker := NewTracker(1)

	var got []int
	sub := tracker.Watch(func(v watchable.Value[int]) {
		got = append(got, v.V)
	})
	defer sub.Close()

	if len(got) != 1 || got[0] != 1 {
		t.Fatalf("expected eager delivery of the current snapshot, got %v", got)
	}

	tracker.Report(2)
	tracker.Report(3)

	if len(got) != 3 || got[1] != 2 || got[2] != 3 {
		t.Errorf("expected [1 2 3], got %v", got)
	}
}

func TestTracker_WatchCloseStopsDelivery(t *testing.T) {
	tracker := NewTracker(1)

	deliveries := 0
	sub := tracker.Watch(func(watchable.Value[int]) { deliveries++ })

	sub.Close()
	tracker.Report(2)

	if deliveries != 1 {
		t.Errorf("expected no delivery after Close, got %d", deliveries)
	}
}

func TestTracker_Feed_ReportsUntilChannelCloses(t *testing.T) {
	tracker := NewTracker(0)

	ch := make(chan int)
	done := make(chan struct{})
	go func() {
		tracker.Feed(context.Background(), ch)
		close(done)
	}()

	ch <- 1
	ch <- 2
	close(ch)

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("timeout waiting for Feed to return")
	}

	if cur := tracker.Current(); cur.V != 2 {
		t.Errorf("expected final value 2, got %d", cur.V)
	}
}

func TestTracker_Feed_StopsOnContextCancel(t *testing.T) {
	tracker := NewTracker(0)

	ctx, cancel := context.WithCancel(context.Background())
	ch := make(chan int)
	done := make(chan struct{})
	go func() {
		tracker.Feed(ctx, ch)
		close(done)
	}()

	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("timeout waiting for Feed to stop on cancel")
	}
}

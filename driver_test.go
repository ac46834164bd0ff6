package ravel

import (
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/kmicklas/ravel/internal/config"
	"github.com/kmicklas/ravel/memdom"
)

type counterModel struct {
	Count int
}

type counterView = Elem[ListenerState, *TextState, Attrs1[ListenerState, Listener[counterModel]], Text]

func renderCounter(m *counterModel) counterView {
	return counterView{
		Tag: "button",
		Attrs: Attrs1[ListenerState, Listener[counterModel]]{
			A1: Listener[counterModel]{
				Event: "click",
				Kind:  Click,
				Handle: func(m *counterModel, evt Event) {
					m.Count++
				},
			},
		},
		Children: Text(strconv.Itoa(m.Count)),
	}
}

func TestDriverEntryPointBuildsFirstCycleSynchronously(t *testing.T) {
	be, root := memdom.New("body")
	model := &counterModel{}

	d := EntryPoint[counterModel, *ElemState[ListenerState, *TextState], counterView](
		model, renderCounter, be, root, config.Config{}, nil)

	if got, want := be.Snapshot(root), body(`<button>0</button>`); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}

	d.Dispatch(d.state.attrs.tok, Event{Kind: Click})

	require.Eventually(t, func() bool {
		return be.Snapshot(root) == body(`<button>1</button>`)
	}, time.Second, time.Millisecond, "expected the click handler to increment Count and rebuild")
}

func TestDriverCycleRecoversAndRethrowsOnPanic(t *testing.T) {
	type panicView = Text

	be, root := memdom.New("body")
	model := new(int)

	render := func(m *int) panicView {
		if *m > 0 {
			panic("boom")
		}
		return Text("ok")
	}

	d := EntryPoint[int, *TextState, panicView](model, render, be, root, config.Config{}, nil)
	*model = 1

	defer func() {
		if recover() == nil {
			t.Fatal("expected cycle() to re-raise the panic after logging it")
		}
	}()
	d.cycle()
}

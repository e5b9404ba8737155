package htmldoc_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/alertdismiss/pkg/clock"
	"github.com/dmitrymomot/alertdismiss/pkg/dismiss"
	"github.com/dmitrymomot/alertdismiss/pkg/htmldoc"
)

const threeAlerts = `<html><body id="body">
<div id="A" class="alert">one</div>
<div id="B" class="alert">two</div>
<div id="C" class="alert">three</div>
</body></html>`

func loadReady(t *testing.T, s string) (*htmldoc.Document, func(*dismiss.Scheduler)) {
	t.Helper()
	doc, ready := htmldoc.Load(context.Background(), strings.NewReader(s))
	return doc, func(sch *dismiss.Scheduler) {
		sch.Run(context.Background(), ready, doc)
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		require.NoError(t, ready.Wait(ctx))
	}
}

func hiddenIDs(t *testing.T, doc *htmldoc.Document, ids ...string) []bool {
	t.Helper()
	out := make([]bool, len(ids))
	for i, id := range ids {
		el, err := doc.Element(id)
		require.NoError(t, err)
		out[i] = el.Hidden()
	}
	return out
}

func TestDismiss_ThreeAlertsEndToEnd(t *testing.T) {
	t.Parallel()
	clk := clock.NewFake()
	doc, run := loadReady(t, threeAlerts)
	run(dismiss.New(dismiss.WithClock(clk)))

	require.Equal(t, 3, clk.Pending())

	clk.Advance(4999 * time.Millisecond)
	assert.Equal(t, []bool{false, false, false}, hiddenIDs(t, doc, "A", "B", "C"))

	clk.Advance(time.Millisecond)
	assert.Equal(t, []bool{true, true, true}, hiddenIDs(t, doc, "A", "B", "C"))
	assert.Len(t, doc.Query("alert"), 3, "hidden alerts remain in the document")
}

func TestDismiss_NoAlerts(t *testing.T) {
	t.Parallel()
	clk := clock.NewFake()
	doc, err := htmldoc.ParseString(`<html><body><p>Welcome</p></body></html>`)
	require.NoError(t, err)

	assert.Equal(t, 0, dismiss.New(dismiss.WithClock(clk)).Schedule(doc))
	assert.Zero(t, clk.Pending())
}

func TestDismiss_LateInsertAndRemoval(t *testing.T) {
	t.Parallel()
	clk := clock.NewFake()
	doc, err := htmldoc.ParseString(threeAlerts)
	require.NoError(t, err)

	require.Equal(t, 3, dismiss.New(dismiss.WithClock(clk)).Schedule(doc))

	b, err := doc.Element("B")
	require.NoError(t, err)
	b.Remove()
	require.NoError(t, doc.Append("body", `<div id="D" class="alert">late</div>`))

	assert.NotPanics(t, func() { clk.Advance(dismiss.DefaultDelay) })

	assert.Equal(t, []bool{true, true, false}, hiddenIDs(t, doc, "A", "C", "D"))
	assert.False(t, b.Hidden(), "removed element is not touched")
}

func TestDismiss_RealClockConcurrentHides(t *testing.T) {
	t.Parallel()
	var b strings.Builder
	b.WriteString(`<html><body>`)
	for range 50 {
		b.WriteString(`<div class="alert">x</div>`)
	}
	b.WriteString(`</body></html>`)

	doc, err := htmldoc.ParseString(b.String())
	require.NoError(t, err)

	require.Equal(t, 50, dismiss.New(dismiss.WithDelay(10*time.Millisecond)).Schedule(doc))

	require.Eventually(t, func() bool {
		for _, el := range doc.Elements("alert") {
			if !el.Hidden() {
				return false
			}
		}
		return true
	}, 2*time.Second, 5*time.Millisecond)
}

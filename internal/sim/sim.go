package sim

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/gravitrone/vlist/internal/log"
	"github.com/gravitrone/vlist/internal/source"
	"github.com/gravitrone/vlist/internal/surface"
	"github.com/gravitrone/vlist/internal/vlist"
)

// Options describe the simulated list and viewport.
type Options struct {
	Items      int
	Viewport   int
	ItemExtent int
	Margin     *int
}

// Result is the outcome of one step.
type Result struct {
	Step     string
	Delta    vlist.Stats
	First    int
	Last     int
	Offset   int
	Attached int
}

type row struct {
	index int
}

// Run replays script and returns one result per step plus the initial build
// and the final teardown.
func Run(opts Options, script *Script) ([]Result, error) {
	if opts.Items < 0 {
		return nil, fmt.Errorf("items must not be negative, got %d", opts.Items)
	}
	surf := surface.NewMemory[*row](opts.Viewport)
	factory := func(_ source.Record, index int, _ []source.Record) (*row, bool, error) {
		return &row{index: index}, true, nil
	}

	var vopts []vlist.Option
	if opts.Margin != nil {
		vopts = append(vopts, vlist.WithMargin(*opts.Margin))
	}
	list, err := vlist.New(surf, source.Generate(opts.Items), factory, opts.ItemExtent, vopts...)
	if err != nil {
		return nil, err
	}

	var results []Result
	var prev vlist.Stats
	record := func(name string) error {
		if v := surf.Violations(); len(v) > 0 {
			return fmt.Errorf("%s: surface contract violated: %s", name, strings.Join(v, "; "))
		}
		stats := list.Stats()
		first, last, _ := list.Window()
		results = append(results, Result{
			Step:     name,
			Delta:    stats.Sub(prev),
			First:    first,
			Last:     last,
			Offset:   surf.ScrollOffset(),
			Attached: len(surf.Attached()),
		})
		prev = stats
		return nil
	}
	if err := record("init"); err != nil {
		return nil, err
	}

	for i, step := range script.Steps {
		if err := apply(list, surf, step); err != nil {
			return results, errors.Join(fmt.Errorf("step %d (%s): %w", i+1, step, err), list.Teardown())
		}
		if err := record(step.String()); err != nil {
			return results, errors.Join(err, list.Teardown())
		}
		log.Debug("sim step", "step", step.String(), "delta", results[len(results)-1].Delta)
	}

	if err := list.Teardown(); err != nil {
		return results, err
	}
	if err := record("teardown"); err != nil {
		return results, err
	}
	return results, nil
}

func apply(list *vlist.List[source.Record, *row], surf *surface.Memory[*row], step Step) error {
	switch {
	case step.Scroll != nil:
		return surf.Scroll(*step.Scroll)
	case step.Index != nil:
		if err := list.ScrollToIndex(*step.Index); err != nil {
			return err
		}
	case step.Resize != nil:
		return surf.Resize(*step.Resize)
	case step.Records != nil:
		if err := list.UpdateData(source.Generate(*step.Records)); err != nil {
			return err
		}
	case step.Margin != nil:
		if err := list.SetMargin(*step.Margin); err != nil {
			return err
		}
	}
	return surf.Flush()
}

var headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
var cellStyle = lipgloss.NewStyle().Padding(0, 1)

// Format writes results as a table.
func Format(w io.Writer, results []Result) error {
	rows := make([][]string, 0, len(results))
	for _, r := range results {
		window := "-"
		if r.Step != "teardown" {
			window = fmt.Sprintf("[%d, %d]", r.First, r.Last)
		}
		rows = append(rows, []string{
			r.Step,
			window,
			strconv.Itoa(r.Offset),
			strconv.Itoa(r.Attached),
			strconv.Itoa(r.Delta.Rebuilds),
			strconv.Itoa(r.Delta.Shifts),
			strconv.Itoa(r.Delta.FactoryCalls),
			strconv.Itoa(r.Delta.Attaches),
			strconv.Itoa(r.Delta.Replaces),
			strconv.Itoa(r.Delta.Detaches),
		})
	}
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("step", "window", "offset", "live", "rebuild", "shift", "create", "attach", "replace", "detach").
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	_, err := fmt.Fprintln(w, t.Render())
	return err
}

package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	tgio "github.com/matzehuels/termgraph/pkg/io"
	"github.com/matzehuels/termgraph/pkg/layout"
	"github.com/matzehuels/termgraph/pkg/pipeline"
	"github.com/matzehuels/termgraph/pkg/watch"
)

var (
	viewHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	viewFooterStyle = lipgloss.NewStyle().Foreground(colorDim)
	viewOnStyle     = lipgloss.NewStyle().Foreground(colorGreen)
	viewOffStyle    = lipgloss.NewStyle().Foreground(colorGray)
)

// viewCommand creates the interactive view command.
func (c *CLI) viewCommand() *cobra.Command {
	var watchFile bool

	cmd := &cobra.Command{
		Use:   "view <file>",
		Short: "Show a graph interactively",
		Long: `Show a graph document full-screen.

Keys:
  l  toggle node labels
  a  toggle node attributes
  e  toggle edge labels
  r  re-run the layout engine with the next seed
  q  quit

With --watch the document is reloaded whenever the file changes.`,
		Example: `  termgraph view --engine eades --watch graph.toml`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()

			runner, err := c.newRunner(ctx)
			if err != nil {
				return err
			}
			defer runner.Close()

			path := args[0]
			load := func() (*tgio.Document, error) {
				doc, err := runner.Load(ctx, path)
				if err != nil {
					return nil, err
				}
				c.applyDocDefaults(cmd, doc)
				return doc, nil
			}
			doc, err := load()
			if err != nil {
				return err
			}

			opts := c.pipelineOptions(cmd)
			opts.Logger = log.New(io.Discard)
			m := newViewModel(ctx, runner, path, doc, opts)
			m.reload = load

			if watchFile {
				w, err := watch.New(path, watch.WithLogger(loggerFromContext(ctx)))
				if err != nil {
					return err
				}
				go func() {
					if err := w.Run(ctx); err != nil {
						loggerFromContext(ctx).Error("watch stopped", "err", err)
					}
				}()
				m.changes = w.Events()
			}

			p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx),
				tea.WithInput(cmd.InOrStdin()), tea.WithOutput(cmd.OutOrStdout()))
			final, err := p.Run()
			if err != nil {
				return err
			}
			if vm, ok := final.(viewModel); ok && vm.err != nil {
				return vm.err
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&watchFile, "watch", "w", false, "reload when the file changes")
	return cmd
}

// =============================================================================
// viewModel - Interactive graph viewer
// =============================================================================

// frameMsg carries the result of a render. seq is the model's render
// generation when the render started.
type frameMsg struct {
	seq int
	res *pipeline.Result
	err error
}

// fileChangedMsg reports that the watched document changed on disk.
type fileChangedMsg struct{}

type viewModel struct {
	ctx    context.Context
	runner *pipeline.Runner
	path   string
	doc    *tgio.Document
	opts   pipeline.Options

	reload  func() (*tgio.Document, error)
	changes <-chan watch.Event

	frame   string
	stats   pipeline.Stats
	cached  bool
	err     error
	reloads int

	// seq counts render requests; frames from older requests are dropped.
	seq int
}

func newViewModel(ctx context.Context, runner *pipeline.Runner, path string, doc *tgio.Document, opts pipeline.Options) viewModel {
	return viewModel{ctx: ctx, runner: runner, path: path, doc: doc, opts: opts}
}

func (m viewModel) Init() tea.Cmd {
	return m.redraw()
}

// redraw renders and, when watching, keeps listening for changes.
func (m viewModel) redraw() tea.Cmd {
	if wait := m.waitForChange(); wait != nil {
		return tea.Batch(m.render(), wait)
	}
	return m.render()
}

// render draws the current document with the current options in the
// background, tagged with the current generation.
func (m viewModel) render() tea.Cmd {
	ctx, runner, doc, opts, seq := m.ctx, m.runner, m.doc, m.opts, m.seq
	return func() tea.Msg {
		res, err := runner.Render(ctx, doc, opts)
		return frameMsg{seq: seq, res: res, err: err}
	}
}

func (m viewModel) waitForChange() tea.Cmd {
	if m.changes == nil {
		return nil
	}
	changes := m.changes
	return func() tea.Msg {
		if _, ok := <-changes; !ok {
			return nil
		}
		return fileChangedMsg{}
	}
}

func (m viewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "l":
			m.opts.Labels = toggle(m.opts.Labels, tgio.HideAll)
		case "a":
			m.opts.Attrs = toggle(m.opts.Attrs, tgio.ShowAll)
		case "e":
			m.opts.EdgeLabels = toggle(m.opts.EdgeLabels, tgio.HideAll)
		case "r":
			if m.opts.Seed == 0 {
				m.opts.Seed = layout.DefaultSeed
			}
			m.opts.Relayout = true
			m.opts.Seed++
		default:
			return m, nil
		}
		m.seq++
		return m, m.render()

	case frameMsg:
		if msg.seq != m.seq {
			return m, nil
		}
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.frame = msg.res.Frame
		m.stats = msg.res.Stats
		m.cached = msg.res.CacheInfo.FrameHit
		return m, nil

	case fileChangedMsg:
		if m.reload != nil {
			doc, err := m.reload()
			if err != nil {
				m.err = err
				return m, m.waitForChange()
			}
			m.doc = doc
			m.reloads++
		}
		m.seq++
		return m, m.redraw()
	}
	return m, nil
}

// toggle flips v. From the document's own setting it moves to first.
func toggle(v, first tgio.Visibility) tgio.Visibility {
	switch v {
	case tgio.ShowAll:
		return tgio.HideAll
	case tgio.HideAll:
		return tgio.ShowAll
	default:
		return first
	}
}

func (m viewModel) View() string {
	var b strings.Builder

	b.WriteString(viewHeaderStyle.Render(m.path))
	b.WriteString("  ")
	b.WriteString(StyleDim.Render(statsLine(m.stats.NodeCount, m.stats.EdgeCount, m.stats.Placed, m.cached)))
	b.WriteString("\n\n")

	if m.err != nil {
		b.WriteString(StyleError.Render(m.err.Error()))
		b.WriteString("\n")
	} else {
		b.WriteString(m.frame)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(viewFooterStyle.Render(fmt.Sprintf("engine %s  seed %d  ", m.opts.Engine, m.opts.Seed)))
	b.WriteString(switchLabel("l", "labels", m.opts.Labels))
	b.WriteString(switchLabel("a", "attrs", m.opts.Attrs))
	b.WriteString(switchLabel("e", "edges", m.opts.EdgeLabels))
	b.WriteString(viewFooterStyle.Render("r relayout  q quit"))
	return b.String()
}

func switchLabel(key, name string, v tgio.Visibility) string {
	style := viewFooterStyle
	switch v {
	case tgio.ShowAll:
		style = viewOnStyle
	case tgio.HideAll:
		style = viewOffStyle
	}
	return style.Render(fmt.Sprintf("%s %s:%s", key, name, v)) + "  "
}

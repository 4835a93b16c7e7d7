package main

import (
	"context"
	"fmt"
	"os"

	"dockpanel/internal/activity"
	"dockpanel/internal/config"
	"dockpanel/internal/panel"
	"dockpanel/internal/pty"
	"dockpanel/internal/telemetry"
	"dockpanel/internal/tmux"
	"dockpanel/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		configPath string
		collapse   bool
		shell      string
	)

	root := &cobra.Command{
		Use:   "dockpanel",
		Short: "A dashboard of maximizable, minimizable, restorable panels",
		Long: `dockpanel arranges shell, tmux-session, and activity panels in a
tiled terminal workspace. Panels maximize over the full area, minimize to a
tray (or collapse away entirely), and restore; the title-bar toggle and
mouse clicks drive the same transitions as the keyboard.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("collapse-on-minimize") {
				cfg.CollapseOnMinimize = collapse
			}
			if shell != "" {
				cfg.Shell = shell
			}
			return run(cmd.Context(), cfg, configPath)
		},
	}
	root.Flags().StringVarP(&configPath, "config", "c", "", "config file (default ~/.config/dockpanel/config.toml)")
	root.Flags().BoolVar(&collapse, "collapse-on-minimize", false, "hide minimized panels entirely instead of keeping a tray")
	root.Flags().StringVar(&shell, "shell", "", "shell command for shell panels (overrides config)")

	root.AddCommand(newInitCmd())
	return root
}

func newInitCmd() *cobra.Command {
	var configPath string
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default config file",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := configPath
			if path == "" {
				path = config.DefaultPath()
			}
			if err := config.WriteDefault(path); err != nil {
				return err
			}
			fmt.Println("wrote", path)
			return nil
		},
	}
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "config file to create")
	return cmd
}

func run(ctx context.Context, cfg *config.Config, configPath string) error {
	exporter, err := telemetry.NewExporter(ctx)
	if err != nil {
		return fmt.Errorf("starting telemetry: %w", err)
	}
	defer exporter.Shutdown(ctx)

	stack := panel.NewStack()
	stack.CollapseOnMinimize = cfg.CollapseOnMinimize

	activityCh := make(chan activity.Event, 64)
	emitter := &activity.ChanEmitter{Ch: activityCh}

	tiles, err := buildTiles(cfg, stack, exporter, emitter, activityCh)
	if err != nil {
		return err
	}

	reg := ui.NewKeybindRegistry()
	reg.BindWithDesc("q", tea.Quit, "Quit")
	reg.BindWithDesc("ctrl+c", tea.Quit, "Quit")
	reg.BindWithDesc("SPC q", tea.Quit, "Quit")
	reg.BindWithDesc("SPC c", func() tea.Msg { return ui.ToggleCollapseMsg{} }, "Toggle collapse on minimize")

	workspace := ui.NewWorkspace(stack, tiles, ui.NewKeyHandler(reg))
	p := tea.NewProgram(workspace, tea.WithAltScreen(), tea.WithMouseCellMotion())

	stopWatch, err := config.Watch(configPath, func(cfg *config.Config) {
		p.Send(ui.CollapseChangedMsg{Collapse: cfg.CollapseOnMinimize})
	})
	if err == nil {
		defer stopWatch()
	}

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running workspace: %w", err)
	}
	return nil
}

// buildTiles turns [[panel]] config blocks into wired tiles. Every panel is
// watched by telemetry and the activity emitter; listener registration
// order means telemetry fires before the feed.
func buildTiles(cfg *config.Config, stack *panel.Stack, exporter *telemetry.Exporter, emitter *activity.ChanEmitter, activityCh chan activity.Event) ([]*ui.Tile, error) {
	tiles := make([]*ui.Tile, 0, len(cfg.Panels))
	for i, pc := range cfg.Panels {
		p := panel.New(stack, i)

		var view ui.View
		switch pc.Kind {
		case "shell":
			view = ui.NewShellView(pty.Local{}, cfg.Shell)
		case "sessions":
			var lister tmux.Lister
			if client, err := tmux.NewClient(); err == nil {
				lister = client
			}
			view = ui.NewSessionsView(lister)
		case "activity":
			view = ui.NewActivityView(activityCh)
		default:
			return nil, fmt.Errorf("panel %q: unknown kind %q", pc.ID, pc.Kind)
		}

		exporter.Watch(p, pc.Title)
		emitter.Watch(p, pc.Title)
		tiles = append(tiles, ui.NewTile(pc.ID, pc.Title, view, p))
	}
	return tiles, nil
}

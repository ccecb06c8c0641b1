package commands

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"harn/internal/config"
	"harn/internal/domain"
	"harn/internal/history"
	"harn/internal/ui"
)

// HistoryCommand handles the history command
type HistoryCommand struct {
	config    *config.Config
	history   *history.Store
	formatter *ui.Formatter
}

// NewHistoryCommand creates a new HistoryCommand
func NewHistoryCommand(cfg *config.Config, historyStore *history.Store, formatter *ui.Formatter) *HistoryCommand {
	return &HistoryCommand{
		config:    cfg,
		history:   historyStore,
		formatter: formatter,
	}
}

// Execute runs the command
func (hc *HistoryCommand) Execute(cmd *cobra.Command, args []string) error {
	runs, err := hc.history.Recent(hc.config.Flags.HistoryLimit)
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		color.Yellow("No recorded runs")
		return nil
	}

	metas := make([]domain.RunMeta, 0, len(runs))
	for _, run := range runs {
		metas = append(metas, run.Meta)
	}
	hc.formatter.PrintHistory(metas)
	return nil
}

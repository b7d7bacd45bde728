// Package help реализует команду help для вывода списка всех
// доступных команд.
package help

import (
	"context"
	"io"
	"sort"

	"github.com/ecur-data/structlog/internal/command"
	"github.com/ecur-data/structlog/internal/config"
	"github.com/ecur-data/structlog/internal/constants"
	"github.com/ecur-data/structlog/internal/pkg/output"
)

func init() {
	command.Register(&Handler{})
}

// CommandInfo описывает одну команду.
type CommandInfo struct {
	// Name — имя команды.
	Name string `json:"name"`
	// Description — описание команды.
	Description string `json:"description"`
}

// Data содержит информацию обо всех доступных командах.
type Data struct {
	// Commands — зарегистрированные команды, отсортированные по имени.
	Commands []CommandInfo `json:"commands"`
}

// Handler обрабатывает команду help.
type Handler struct{}

// Name возвращает имя команды.
func (h *Handler) Name() string {
	return constants.ActHelp
}

// Description возвращает описание команды для вывода в help.
func (h *Handler) Description() string {
	return "Вывод списка доступных команд"
}

// Execute собирает список зарегистрированных команд и выводит результат.
func (h *Handler) Execute(_ context.Context, cfg *config.Config, out io.Writer) error {
	all := command.All()
	commands := make([]CommandInfo, 0, len(all))
	for _, handler := range all {
		commands = append(commands, CommandInfo{
			Name:        handler.Name(),
			Description: handler.Description(),
		})
	}
	sort.Slice(commands, func(i, j int) bool {
		return commands[i].Name < commands[j].Name
	})

	result := output.NewSuccessResult(constants.ActHelp, Data{Commands: commands})

	format := ""
	if cfg != nil {
		format = cfg.OutputFormat
	}
	return output.NewWriter(format).Write(out, result)
}

// Package constants содержит константы, используемые в проекте structlog.
// Константы сгруппированы по функциональному назначению.
package constants

// Version — версия приложения. Подставляется при сборке через ldflags.
var Version = "dev"

// Константы сообщений приложения
const (
	// MsgAppExit - сообщение о завершении работы программы
	MsgAppExit = "Завершение работы программы"
	// MsgErrProcessing - сообщение об обработке ошибки
	MsgErrProcessing = "Обработка ошибки"
)

// Константы действий (команд)
const (
	// ActEmit - пробная запись лога на заданном уровне
	ActEmit = "emit"
	// ActAlert - пробная диспетчеризация exception-алерта
	ActAlert = "alert"
	// ActHelp - вывод списка доступных команд
	ActHelp = "help"
	// ActVersion - вывод информации о версии
	ActVersion = "version"
)

// Переменные окружения приложения
const (
	// EnvCommand - имя выполняемой команды
	EnvCommand = "SL_COMMAND"
	// EnvModule - имя модуля (логгера) для пробных команд
	EnvModule = "SL_MODULE"
	// EnvTeam - имя команды-владельца
	EnvTeam = "SL_TEAM"
	// EnvOutputFormat - формат вывода результата команды: text или json
	EnvOutputFormat = "SL_OUTPUT_FORMAT"
)

// Коды завершения приложения
const (
	// ExitOK - успешное выполнение
	ExitOK = 0
	// ExitUnknownCommand - неизвестная команда
	ExitUnknownCommand = 2
	// ExitConfigError - ошибка загрузки конфигурации
	ExitConfigError = 5
	// ExitCommandError - ошибка выполнения команды
	ExitCommandError = 8
)

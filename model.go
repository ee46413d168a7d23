package main

import (
	"strings"

	"metamask-connect-tui/config"
	"metamask-connect-tui/session"
	"metamask-connect-tui/styles"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

// -------------------- MODEL --------------------

// model represents the application state following The Elm Architecture
type model struct {
	w, h int

	cfg        config.Config
	configPath string

	// wallet state
	sess session.Session

	// install notification, shown at most once
	alert      *huh.Form
	alertCount int

	// clipboard feedback
	copiedMsg string

	// logger panel
	logEnabled  bool
	logger      *log.Logger
	logBuffer   *strings.Builder
	logViewport viewport.Model
}

// -------------------- INIT --------------------

// newModel creates a model for cfg; configPath is where logger toggles are saved
func newModel(cfg config.Config, configPath string) model {
	vp := viewport.New(0, 10) // resized on first WindowSizeMsg
	vp.Style = lipgloss.NewStyle().
		Foreground(styles.CText).
		Background(styles.CPanel)

	buf := &strings.Builder{}

	m := model{
		cfg:         cfg,
		configPath:  configPath,
		logEnabled:  cfg.Logger,
		logBuffer:   buf,
		logViewport: vp,
		logger:      newLogger(buf),
	}
	return m
}

// newLogger creates a logger that writes to the log panel buffer
func newLogger(buf *strings.Builder) *log.Logger {
	l := log.NewWithOptions(buf, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
		Prefix:          "",
	})
	l.SetLevel(log.DebugLevel)
	l.SetStyles(&log.Styles{
		Timestamp: lipgloss.NewStyle().Foreground(cMuted),
		Caller:    lipgloss.NewStyle().Faint(true),
		Prefix:    lipgloss.NewStyle().Bold(true).Foreground(cAccent2),
		Message:   lipgloss.NewStyle().Foreground(cText),
		Key:       lipgloss.NewStyle().Foreground(cAccent),
		Value:     lipgloss.NewStyle().Foreground(cText),
		Separator: lipgloss.NewStyle().Faint(true),
		Levels: map[log.Level]lipgloss.Style{
			log.DebugLevel: lipgloss.NewStyle().Foreground(cMuted).SetString("DEBUG"),
			log.InfoLevel:  lipgloss.NewStyle().Foreground(cAccent2).SetString("INFO"),
			log.WarnLevel:  lipgloss.NewStyle().Foreground(cWarn).SetString("WARN"),
			log.ErrorLevel: lipgloss.NewStyle().Foreground(lipgloss.Color("#FF0000")).SetString("ERROR"),
		},
	})
	return l
}

// Init implements tea.Model and starts bridge detection
func (m model) Init() tea.Cmd {
	return detectBridge(m.cfg.ProviderURL)
}

// newInstallAlert builds the blocking "install the wallet" notification
func newInstallAlert() *huh.Form {
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title("MetaMask not found").
				Description("Please install MetaMask!").
				Next(true).
				NextLabel("OK"),
		),
	).WithTheme(huh.ThemeCatppuccin()).WithShowHelp(false)

	form.Init()
	return form
}

// -------------------- MODEL HELPER METHODS --------------------

// addLog adds a log entry. Entries are always recorded, the panel only shows them when enabled.
func (m *model) addLog(logType, message string, keyvals ...interface{}) {
	if m.logger == nil {
		return
	}

	switch logType {
	case "info":
		m.logger.Info(message, keyvals...)
	case "success":
		m.logger.Info("✓ "+message, keyvals...)
	case "error":
		m.logger.Error(message, keyvals...)
	case "warning":
		m.logger.Warn(message, keyvals...)
	case "debug":
		m.logger.Debug(message, keyvals...)
	default:
		m.logger.Print(message, keyvals...)
	}

	m.updateLogViewport()
}

// updateLogViewport refreshes the log panel content and scrolls to the newest entry
func (m *model) updateLogViewport() {
	m.logViewport.SetContent(m.logBuffer.String())
	m.logViewport.GotoBottom()
}

// closeBridge releases the provider connection, if any
func (m *model) closeBridge() {
	if c, ok := m.sess.Bridge().(interface{ Close() }); ok {
		c.Close()
	}
}

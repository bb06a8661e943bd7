package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"agentchat/agents"
	"agentchat/config"
	tui "agentchat/internal/tui"
	"agentchat/transcript"
	"agentchat/util"

	"github.com/charmbracelet/x/term"
)

// defaultPrintWidth is used when stdout is not a terminal.
const defaultPrintWidth = 80

func main() {
	// Set up data directory (platform-appropriate location)
	dataDir, err := util.DataDir()
	if err != nil {
		log.Fatalf("Failed to get data directory: %v", err)
	}

	// Ensure data directory exists
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		log.Fatalf("Failed to create data directory: %v", err)
	}

	uiMode := flag.Bool("ui", false, "Launch the interactive TUI")
	file := flag.String("file", "", "Transcript file to open ('-' reads stdin; default stdin when piped)")
	role := flag.String("role", "", "Author of plain-text input (overrides transcript.default_role)")
	themeFlag := flag.String("theme", "", "Color theme: default, dark or light (overrides ui.theme)")
	width := flag.Int("width", -1, "Wrap message text at this column, 0 uses the window (overrides transcript.wrap_width)")
	agentsFlag := flag.String("agents", "", "Only show messages from these agents, e.g. 'RedTeamRick,BlueTeamBeth'")
	detect := flag.Bool("detect", false, "Print whether the input is a multi-agent payload and exit (status 1 when it is not)")
	jsonOut := flag.Bool("json", false, "Print the messages as a multi-agent JSON payload")
	flag.Parse()

	// Load app settings (from agentchat.yaml)
	appSettingsPath := filepath.Join(dataDir, config.AppSettingsFileName)
	appSettings, _, err := config.LoadAppSettings(dataDir)
	if err != nil {
		log.Printf("Warning: Could not load app settings: %v", err)
		appSettings = config.DefaultAppSettings()
	}

	// Create agentchat.yaml if it doesn't exist
	if _, err := os.Stat(appSettingsPath); os.IsNotExist(err) {
		if err := config.SaveAppSettings(dataDir, appSettings); err != nil {
			log.Printf("Warning: Could not save default app settings: %v", err)
		}
	}

	// Flags override settings for this run only
	if *role != "" {
		appSettings.Transcript.DefaultRole = *role
	}
	if *themeFlag != "" {
		appSettings.UI.Theme = *themeFlag
	}
	if *width >= 0 {
		appSettings.Transcript.WrapWidth = *width
	}

	if err := appSettings.Validate(); err != nil {
		log.Printf("Warning: Invalid settings in %s:\n%v", util.DisplayPath(appSettingsPath), err)
	}

	history, err := config.LoadHistory(dataDir)
	if err != nil {
		log.Printf("Warning: Could not load history: %v", err)
		history = &config.History{}
	}

	path := *file
	if path == "" && !term.IsTerminal(os.Stdin.Fd()) {
		path = "-"
	}

	var t *transcript.Transcript
	if path != "" {
		t, err = transcript.LoadFile(path, appSettings.Transcript.DefaultRole)
		if err != nil {
			log.Fatalf("Error: %v", err)
		}
	}

	if missingInput(t, *uiMode, *detect) {
		printUsage()
		os.Exit(1)
	}

	if *detect {
		fmt.Println(t.MultiAgent)
		if !t.MultiAgent {
			os.Exit(1)
		}
		return
	}

	if filter := agents.Parse(*agentsFlag); len(filter) > 0 {
		t = t.Filtered(filter)
	}

	if entry, ok := t.HistoryEntry(); ok {
		history.Record(entry, appSettings.Transcript.HistoryLimit)
		if err := config.SaveHistory(dataDir, history); err != nil {
			log.Printf("Warning: Could not save history: %v", err)
		}
	}

	if *uiMode {
		if t == nil {
			t = &transcript.Transcript{}
		}
		if err := tui.Run(dataDir, appSettings, t, history); err != nil {
			log.Fatalf("Error running TUI: %v", err)
		}
		return
	}

	if *jsonOut {
		out, err := agents.FormatMultiAgentResponse(t.Messages)
		if err != nil {
			log.Fatalf("Error: failed to encode messages: %v", err)
		}
		fmt.Println(out)
		return
	}

	fmt.Println(tui.Render(appSettings, t, printWidth()))
}

// missingInput reports whether there is nothing to work on. Only the UI can
// start without a transcript; -detect needs input even in UI mode.
func missingInput(t *transcript.Transcript, uiMode, detect bool) bool {
	return t == nil && (!uiMode || detect)
}

func printWidth() int {
	w, _, err := term.GetSize(os.Stdout.Fd())
	if err != nil || w <= 0 {
		return defaultPrintWidth
	}
	return w
}

func printUsage() {
	fmt.Println("Usage: agentchat [options] [-file transcript.json]")
	fmt.Println()
	fmt.Println("Renders multi-agent chat transcripts. Input is a JSON array of")
	fmt.Println(`{"role": ..., "content": ...} objects; anything else is shown as one message.`)
	fmt.Println()
	fmt.Println("Options:")
	flag.PrintDefaults()
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  agentchat -file debate.json                 # Print the transcript")
	fmt.Println("  cat debate.json | agentchat -ui             # Browse it in the TUI")
	fmt.Println("  agentchat -ui                               # Open a recent transcript")
	fmt.Println("  agentchat -file reply.txt -detect           # Is it a multi-agent payload?")
}

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

const (
	DefaultConfigFileName = "config.toml"
	DefaultLogFileName    = "moss.log"
	DefaultNoteTitle      = "Quick Note"
	DefaultTaskTitle      = "Task"
)

type LogConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
	File   string `toml:"file"`
}

type Keymap struct {
	Yesterday string `toml:"yesterday"`
	Today     string `toml:"today"`
	Tomorrow  string `toml:"tomorrow"`
	PrevPage  string `toml:"prev_page"`
	NextPage  string `toml:"next_page"`
	NewNote   string `toml:"new_note"`
	NewTask   string `toml:"new_task"`
	Toggle    string `toml:"toggle"`
	Delete    string `toml:"delete"`
	Detail    string `toml:"detail"`
	RR        string `toml:"rr"`
	Workout   string `toml:"workout"`
	Calendar  string `toml:"calendar"`
	Help      string `toml:"help"`
	Quit      string `toml:"quit"`
}

type Config struct {
	// Timezone names the IANA zone used to cut calendar days; empty means local.
	Timezone  string    `toml:"timezone"`
	NoteTitle string    `toml:"note_title"`
	TaskTitle string    `toml:"task_title"`
	Log       LogConfig `toml:"log"`
	Keys      Keymap    `toml:"keys"`
}

func Default() Config {
	return Config{
		NoteTitle: DefaultNoteTitle,
		TaskTitle: DefaultTaskTitle,
		Log: LogConfig{
			Level:  "info",
			Format: "console",
			File:   DefaultLogFileName,
		},
		Keys: DefaultKeymap(),
	}
}

func DefaultKeymap() Keymap {
	return Keymap{
		Yesterday: "1",
		Today:     "2",
		Tomorrow:  "3",
		PrevPage:  "[",
		NextPage:  "]",
		NewNote:   "n",
		NewTask:   "t",
		Toggle:    " ",
		Delete:    "x",
		Detail:    "enter",
		RR:        "r",
		Workout:   "w",
		Calendar:  "c",
		Help:      "?",
		Quit:      "q",
	}
}

// ResolvePath picks the config file: $MOSS_CONFIG, then
// $XDG_CONFIG_HOME/moss, then ~/.config/moss.
func ResolvePath() string {
	if p := strings.TrimSpace(os.Getenv("MOSS_CONFIG")); p != "" {
		return p
	}
	if xdg := strings.TrimSpace(os.Getenv("XDG_CONFIG_HOME")); xdg != "" {
		return filepath.Join(xdg, "moss", DefaultConfigFileName)
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return DefaultConfigFileName
	}
	return filepath.Join(home, ".config", "moss", DefaultConfigFileName)
}

// LoadOrCreate reads the TOML file at path, writing the defaults there
// first when it does not exist yet.
func LoadOrCreate(path string) (Config, error) {
	cfg := Default()
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err := write(path, cfg); err != nil {
			return cfg, fmt.Errorf("write default config: %w", err)
		}
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	cfg.fillDefaults()
	return cfg, nil
}

// AnchorLogFile resolves a relative Log.File against dir, the directory of
// the config file that named it.
func (c Config) AnchorLogFile(dir string) Config {
	if c.Log.File != "" && !filepath.IsAbs(c.Log.File) {
		c.Log.File = filepath.Join(dir, c.Log.File)
	}
	return c
}

// FromEnv applies MOSS_* overrides on top of base.
func FromEnv(base Config) Config {
	cfg := base
	if v, ok := getEnvString("MOSS_LOG_LEVEL"); ok {
		cfg.Log.Level = v
	}
	if v, ok := getEnvString("MOSS_LOG_FORMAT"); ok {
		cfg.Log.Format = v
	}
	if v, ok := lookupEnv("MOSS_LOG_FILE"); ok {
		cfg.Log.File = v
	}
	if v, ok := getEnvString("MOSS_NOTE_TITLE"); ok {
		cfg.NoteTitle = v
	}
	if v, ok := getEnvString("MOSS_TASK_TITLE"); ok {
		cfg.TaskTitle = v
	}
	if v, ok := getEnvString("MOSS_TIMEZONE"); ok {
		cfg.Timezone = v
	}
	return cfg
}

// Location resolves Timezone, falling back to time.Local.
func (c Config) Location() (*time.Location, error) {
	if strings.TrimSpace(c.Timezone) == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.Local, fmt.Errorf("load timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

func (c *Config) fillDefaults() {
	def := Default()
	if strings.TrimSpace(c.NoteTitle) == "" {
		c.NoteTitle = def.NoteTitle
	}
	if strings.TrimSpace(c.TaskTitle) == "" {
		c.TaskTitle = def.TaskTitle
	}
	if c.Log.Level == "" {
		c.Log.Level = def.Log.Level
	}
	if c.Log.Format == "" {
		c.Log.Format = def.Log.Format
	}
	fillKey(&c.Keys.Yesterday, def.Keys.Yesterday)
	fillKey(&c.Keys.Today, def.Keys.Today)
	fillKey(&c.Keys.Tomorrow, def.Keys.Tomorrow)
	fillKey(&c.Keys.PrevPage, def.Keys.PrevPage)
	fillKey(&c.Keys.NextPage, def.Keys.NextPage)
	fillKey(&c.Keys.NewNote, def.Keys.NewNote)
	fillKey(&c.Keys.NewTask, def.Keys.NewTask)
	fillKey(&c.Keys.Toggle, def.Keys.Toggle)
	fillKey(&c.Keys.Delete, def.Keys.Delete)
	fillKey(&c.Keys.Detail, def.Keys.Detail)
	fillKey(&c.Keys.RR, def.Keys.RR)
	fillKey(&c.Keys.Workout, def.Keys.Workout)
	fillKey(&c.Keys.Calendar, def.Keys.Calendar)
	fillKey(&c.Keys.Help, def.Keys.Help)
	fillKey(&c.Keys.Quit, def.Keys.Quit)
}

func fillKey(dst *string, def string) {
	if *dst == "" {
		*dst = def
	}
}

func write(path string, cfg Config) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	data, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func getEnvString(name string) (string, bool) {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return "", false
	}
	return raw, true
}

// lookupEnv distinguishes an empty value from an unset one, so
// MOSS_LOG_FILE= can switch file logging off.
func lookupEnv(name string) (string, bool) {
	raw, ok := os.LookupEnv(name)
	if !ok {
		return "", false
	}
	return strings.TrimSpace(raw), true
}

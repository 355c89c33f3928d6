package llm

import (
	"os"
	"strconv"
)

// TaskType identifies the kind of LLM task being performed.
type TaskType string

const (
	TaskRoute   TaskType = "route"
	TaskPlan    TaskType = "plan"
	TaskAdapt   TaskType = "adapt"
	TaskQuiz    TaskType = "quiz"
	TaskChat    TaskType = "chat"
	TaskDiagram TaskType = "diagram"
)

// TaskConfig holds per-task LLM parameters.
type TaskConfig struct {
	Temperature float64
	MaxTokens   int
	TimeoutMs   int // overrides global if > 0
}

// Config holds all configuration for the LLM subsystem.
type Config struct {
	Endpoint   string
	Model      string
	TimeoutMs  int
	MaxRetries int
	Tasks      map[TaskType]TaskConfig
}

// DefaultConfig returns a Config with sensible defaults. Routing runs
// cold and short; plan and adapt calls get the largest budgets.
func DefaultConfig() Config {
	return Config{
		Endpoint:   "http://localhost:11434",
		Model:      "llama3.2",
		TimeoutMs:  15000,
		MaxRetries: 1,
		Tasks: map[TaskType]TaskConfig{
			TaskRoute:   {Temperature: 0.0, MaxTokens: 128, TimeoutMs: 8000},
			TaskPlan:    {Temperature: 0.2, MaxTokens: 4096, TimeoutMs: 30000},
			TaskAdapt:   {Temperature: 0.3, MaxTokens: 4096, TimeoutMs: 30000},
			TaskQuiz:    {Temperature: 0.2, MaxTokens: 2048, TimeoutMs: 20000},
			TaskChat:    {Temperature: 0.6, MaxTokens: 1024, TimeoutMs: 15000},
			TaskDiagram: {Temperature: 0.1, MaxTokens: 1024, TimeoutMs: 15000},
		},
	}
}

// LoadConfig reads LLM configuration from environment variables,
// falling back to defaults for any unset values.
func LoadConfig() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("PATHFINDER_LLM_ENDPOINT"); v != "" {
		cfg.Endpoint = v
	}
	if v := os.Getenv("PATHFINDER_LLM_MODEL"); v != "" {
		cfg.Model = v
	}
	if v := os.Getenv("PATHFINDER_LLM_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.TimeoutMs = n
		}
	}
	if v := os.Getenv("PATHFINDER_LLM_MAX_RETRIES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.MaxRetries = n
		}
	}

	applyTaskTimeoutEnv(&cfg, TaskRoute, "PATHFINDER_LLM_ROUTE_TIMEOUT_MS")
	applyTaskTimeoutEnv(&cfg, TaskPlan, "PATHFINDER_LLM_PLAN_TIMEOUT_MS")
	applyTaskTimeoutEnv(&cfg, TaskAdapt, "PATHFINDER_LLM_ADAPT_TIMEOUT_MS")
	applyTaskTimeoutEnv(&cfg, TaskQuiz, "PATHFINDER_LLM_QUIZ_TIMEOUT_MS")
	applyTaskTimeoutEnv(&cfg, TaskChat, "PATHFINDER_LLM_CHAT_TIMEOUT_MS")
	applyTaskTimeoutEnv(&cfg, TaskDiagram, "PATHFINDER_LLM_DIAGRAM_TIMEOUT_MS")

	return cfg
}

// TaskTimeout returns the effective timeout for a given task type.
// Uses the task-specific timeout if set, otherwise the global timeout.
func (c Config) TaskTimeout(task TaskType) int {
	if tc, ok := c.Tasks[task]; ok && tc.TimeoutMs > 0 {
		return tc.TimeoutMs
	}
	return c.TimeoutMs
}

func applyTaskTimeoutEnv(cfg *Config, task TaskType, envName string) {
	v := os.Getenv(envName)
	if v == "" {
		return
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return
	}
	tc := cfg.Tasks[task]
	tc.TimeoutMs = n
	cfg.Tasks[task] = tc
}

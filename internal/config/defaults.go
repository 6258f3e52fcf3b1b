package config

// Default returns the built-in configuration values applied before any file
// is read.
func Default() Config {
	return Config{
		Paths: Paths{
			RepositoryDir: "~/papervault/repository",
			IntakeDir:     "~/papervault/intake",
			LogDir:        "~/papervault/logs",
		},
		Juicer: Juicer{
			Enabled:        true,
			Binary:         "docker",
			Image:          "adacta10/juicer",
			TimeoutSeconds: 600,
		},
		Intake: Intake{
			PollSeconds: 5,
		},
		Logging: Logging{
			Format: "console",
			Level:  "info",
		},
	}
}

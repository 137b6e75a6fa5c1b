package config

type (
	InternalConfig struct {
		App     App
		API     API
		Session Session
	}

	DriverConfig struct {
		Redis  Redis
		Logger Logger
	}

	App struct {
		Env     string
		Version string
	}

	API struct {
		BaseUrl          string
		TimeoutInSeconds int
	}

	Session struct {
		Backend  string
		FilePath string
	}

	Redis struct {
		Host     string
		Port     string
		Password string
	}

	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}
)

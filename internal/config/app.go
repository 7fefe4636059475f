package config

type AppConfig struct {
	Server ServerConfig
	Table  TableConfig
	Log    LogConfig
}

func LoadApp() (AppConfig, error) {
	logCfg, err := LoadLog()
	if err != nil {
		return AppConfig{}, err
	}
	tableCfg, err := LoadTable()
	if err != nil {
		return AppConfig{}, err
	}
	serverCfg, err := LoadServer()
	if err != nil {
		return AppConfig{}, err
	}
	return AppConfig{
		Server: serverCfg,
		Table:  tableCfg,
		Log:    logCfg,
	}, nil
}

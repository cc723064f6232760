package config

func InitializeConfig() error {
	NewLoggerService()
	if err := LoadApp(); err != nil {
		return err
	}
	if err := ConnectDatabase(); err != nil {
		return err
	}

	return nil
}

package config

func (c Config) Production() bool {
	return c.Mode == "production"
}

func (c Config) Development() bool {
	return !c.Production()
}

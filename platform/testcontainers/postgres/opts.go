package postgres

type Option func(*Config)

// WithContainerName pins the container name; empty lets docker pick one.
func WithContainerName(name string) Option {
	return func(c *Config) { c.ContainerName = name }
}

// WithImageName overrides both the default image and the env override.
func WithImageName(image string) Option {
	return func(c *Config) { c.ImageName = image }
}

func WithDatabase(database string) Option {
	return func(c *Config) { c.Database = database }
}

func WithAuth(username, password string) Option {
	return func(c *Config) {
		c.Username, c.Password = username, password
	}
}

// WithLogger ignores nil so the no-op default stays in place.
func WithLogger(logger Logger) Option {
	return func(c *Config) {
		if logger != nil {
			c.Logger = logger
		}
	}
}

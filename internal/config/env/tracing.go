package envconfig

import "github.com/caarlos0/env/v11"

type tracingEnv struct {
	Enabled        bool    `env:"TRACING_ENABLED" envDefault:"false"`
	Endpoint       string  `env:"OTEL_EXPORTER_OTLP_ENDPOINT" envDefault:"localhost:4318"`
	Insecure       bool    `env:"OTEL_EXPORTER_OTLP_INSECURE" envDefault:"true"`
	ServiceName    string  `env:"OTEL_SERVICE_NAME" envDefault:"repair-workshop"`
	ServiceVersion string  `env:"SERVICE_VERSION" envDefault:"dev"`
	SampleRatio    float64 `env:"OTEL_SAMPLE_RATIO" envDefault:"1"`
}

type tracing struct {
	raw tracingEnv
}

func NewTracingConfig() (*tracing, error) {
	var raw tracingEnv
	if err := env.Parse(&raw); err != nil {
		return nil, err
	}
	return &tracing{raw: raw}, nil
}

func (cfg *tracing) Enabled() bool          { return cfg.raw.Enabled }
func (cfg *tracing) Endpoint() string       { return cfg.raw.Endpoint }
func (cfg *tracing) Insecure() bool         { return cfg.raw.Insecure }
func (cfg *tracing) ServiceName() string    { return cfg.raw.ServiceName }
func (cfg *tracing) ServiceVersion() string { return cfg.raw.ServiceVersion }
func (cfg *tracing) SampleRatio() float64   { return cfg.raw.SampleRatio }

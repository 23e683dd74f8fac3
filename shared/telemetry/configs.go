package telemetry

// CheckoutServiceConfig is the telemetry configuration for the checkout service
var CheckoutServiceConfig = Config{
	ServiceName:    "checkout-service",
	ServiceVersion: "1.0.0",
}

// WithOTLPEndpoint sets the OTLP endpoint for a config
func (c Config) WithOTLPEndpoint(endpoint string) Config {
	c.OTLPEndpoint = endpoint
	return c
}

// WithVersion sets the service version for a config
func (c Config) WithVersion(version string) Config {
	c.ServiceVersion = version
	return c
}

// WithSampleRatio sets the fraction of root traces sampled
func (c Config) WithSampleRatio(ratio float64) Config {
	c.SampleRatio = ratio
	return c
}

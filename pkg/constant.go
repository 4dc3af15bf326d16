package pkg

const (
	DEFAULT_EPSILON = 1.0
	DEFAULT_WORKERS = 4
	ENV_PREFIX      = "RDP"
)

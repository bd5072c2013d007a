package server

import (
	"time"
)

type Config struct {
	Port            int           `yaml:"port"`
	RateBuckets     int           `yaml:"rateBuckets"`
	RatePeriod      time.Duration `yaml:"ratePeriod"`
	ShutdownTimeout time.Duration `yaml:"shutdownTimeout"`
}

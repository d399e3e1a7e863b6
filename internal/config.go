package internal

import "time"

type Config struct {
	BadgerFilepath string `env:"BADGER_FILEPATH,required=true"`
	BlugeFilepath  string `env:"BLUGE_FILEPATH,required=true"`
	TransferRoot   string `env:"TRANSFER_ROOT,required=true"`
	LogLevel       string `env:"LOG_LEVEL,required=true"`

	// ConcurrencyCeiling is the number of requests the external subsystem
	// accepts at once; the coordinator never admits beyond it.
	ConcurrencyCeiling int `env:"CONCURRENCY_CEILING,default=5"`

	// GatewayCapacity is the gateway's own global tracking limit, shared
	// by every client of the subsystem.
	GatewayCapacity int    `env:"GATEWAY_CAPACITY,default=25"`
	GatewayEnabled  bool   `env:"GATEWAY_ENABLED,default=true"`
	MinFreeBytes    uint64 `env:"MIN_FREE_BYTES,default=104857600"`

	EventBufferSize   int           `env:"EVENT_BUFFER_SIZE,required=true"`
	CompletionBuffer  int           `env:"COMPLETION_BUFFER_SIZE,required=true"`
	PendingPollPeriod time.Duration `env:"PENDING_POLL_PERIOD,required=true"`
	HTTPTimeout       time.Duration `env:"HTTP_TIMEOUT,default=0s"`
}

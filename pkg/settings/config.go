package settings

// Allocator names accepted by Vector.Allocator.
const (
	AllocatorHeap = "heap"
	AllocatorPool = "pool"
	AllocatorMmap = "mmap"
)

type Config struct {
	Vector Vector `mapstructure:"vector"`
	Logger Logger `mapstructure:"logger"`
}

// Vector is the configuration for vectors built with vector.NewFromSettings
type Vector struct {
	InitialCapacity int    `mapstructure:"initial_capacity" validate:"gte=0"`
	MaxCapacity     int    `mapstructure:"max_capacity" validate:"gte=0"` // 0 means unlimited
	Allocator       string `mapstructure:"allocator" validate:"omitempty,oneof=heap pool mmap"`
}

// Logger is the configuration for the logger
type Logger struct {
	LogLevel    string `mapstructure:"log_level" validate:"omitempty,oneof=debug info warn error dpanic panic fatal"`
	FileLogName string `mapstructure:"file_log_name"`
	MaxBackups  int    `mapstructure:"max_backups" validate:"gte=0"`
	MaxAge      int    `mapstructure:"max_age" validate:"gte=0"`  // Days
	MaxSize     int    `mapstructure:"max_size" validate:"gte=0"` // Megabytes
	Compress    bool   `mapstructure:"compress"`
}

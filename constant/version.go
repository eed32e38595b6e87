package constant

// Set with -ldflags "-X github.com/xishang0128/efd-unpacker-go/constant.Version=..."
var (
	Version   = "dev"
	BuildTime = "unknown"
)

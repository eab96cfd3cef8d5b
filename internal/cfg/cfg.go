package cfg

import "os"

var (
	EMAILMIGRATEDIALECT   = DefaultDialect
	EMAILMIGRATEDRIVER    = ""
	EMAILMIGRATEDBSTRING  = ""
	EMAILMIGRATEHOST      = DefaultHost
	EMAILMIGRATEPORT      = DefaultPort
	EMAILMIGRATEUSER      = DefaultUser
	EMAILMIGRATEPASSWORD  = DefaultPassword
	EMAILMIGRATEDATABASE  = DefaultDatabase
	EMAILMIGRATETABLENAME = DefaultTableName
	// https://no-color.org/
	EMAILMIGRATENOCOLOR = "false"
)

// Defaults match the legacy deployment of the legal education database.
var (
	DefaultDialect   = "mysql"
	DefaultHost      = "localhost"
	DefaultPort      = "3307"
	DefaultUser      = "legal_app_user"
	DefaultPassword  = "ROOT"
	DefaultDatabase  = "legal_education_mysql5"
	DefaultTableName = "users"
)

const masked = "********"

// Load reads the config values from environment, allowing them to be loaded first from the file
// pointed by the `-env` argument.
func Load() {
	EMAILMIGRATEDIALECT = envOr("EMAILMIGRATE_DIALECT", EMAILMIGRATEDIALECT)
	EMAILMIGRATEDRIVER = envOr("EMAILMIGRATE_DRIVER", EMAILMIGRATEDRIVER)
	EMAILMIGRATEDBSTRING = envOr("EMAILMIGRATE_DBSTRING", EMAILMIGRATEDBSTRING)
	EMAILMIGRATEHOST = envOr("EMAILMIGRATE_HOST", EMAILMIGRATEHOST)
	EMAILMIGRATEPORT = envOr("EMAILMIGRATE_PORT", EMAILMIGRATEPORT)
	EMAILMIGRATEUSER = envOr("EMAILMIGRATE_USER", EMAILMIGRATEUSER)
	EMAILMIGRATEPASSWORD = envOr("EMAILMIGRATE_PASSWORD", EMAILMIGRATEPASSWORD)
	EMAILMIGRATEDATABASE = envOr("EMAILMIGRATE_DATABASE", EMAILMIGRATEDATABASE)
	EMAILMIGRATETABLENAME = envOr("EMAILMIGRATE_TABLE", EMAILMIGRATETABLENAME)
	// https://no-color.org/
	EMAILMIGRATENOCOLOR = envOr("NO_COLOR", EMAILMIGRATENOCOLOR)
}

// An EnvVar is an environment variable Name=Value.
type EnvVar struct {
	Name  string
	Value string
}

// List returns the resolved variables. The password is masked.
func List() []EnvVar {
	password := EMAILMIGRATEPASSWORD
	if password != "" {
		password = masked
	}
	return []EnvVar{
		{Name: "EMAILMIGRATE_DIALECT", Value: EMAILMIGRATEDIALECT},
		{Name: "EMAILMIGRATE_DRIVER", Value: EMAILMIGRATEDRIVER},
		{Name: "EMAILMIGRATE_DBSTRING", Value: maskDBString(EMAILMIGRATEDBSTRING)},
		{Name: "EMAILMIGRATE_HOST", Value: EMAILMIGRATEHOST},
		{Name: "EMAILMIGRATE_PORT", Value: EMAILMIGRATEPORT},
		{Name: "EMAILMIGRATE_USER", Value: EMAILMIGRATEUSER},
		{Name: "EMAILMIGRATE_PASSWORD", Value: password},
		{Name: "EMAILMIGRATE_DATABASE", Value: EMAILMIGRATEDATABASE},
		{Name: "EMAILMIGRATE_TABLE", Value: EMAILMIGRATETABLENAME},
		{Name: "NO_COLOR", Value: EMAILMIGRATENOCOLOR},
	}
}

// NoColor reports whether colored output is disabled.
func NoColor() bool {
	switch EMAILMIGRATENOCOLOR {
	case "", "0", "false", "FALSE", "False":
		return false
	}
	return true
}

// envOr returns os.Getenv(key) if set, or else default.
func envOr(key, def string) string {
	val := os.Getenv(key)
	if val == "" {
		val = def
	}
	return val
}

package config

// Embed the zone database so BOARD_TIMEZONE works in minimal containers.
import _ "time/tzdata"

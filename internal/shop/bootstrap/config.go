package bootstrap

import "github.com/SantiagoSpook/examen-AdminBD/internal/pkg/database"

type ShopConfig struct {
	DbSettings database.PostgresSettings
	HttpPort   string
}

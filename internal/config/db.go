package config

import (
	"context"
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Connect(ctx context.Context, dsn string) error {
	if dsn == "" {
		return fmt.Errorf("DATABASE_DSN não configurado")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return fmt.Errorf("erro ao conectar no banco: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("erro ao obter conexão SQL: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("erro ao pingar o banco: %w", err)
	}

	DB = db
	return nil
}

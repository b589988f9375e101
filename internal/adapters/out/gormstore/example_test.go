package gormstore_test

import (
	"context"
	"log"

	"fooddelivery/internal/adapters/out/gormstore"
)

func ExampleGormUnitOfWorkFactory() {
	ctx := context.Background()
	dsn := "host=localhost user=postgres password=postgres dbname=orders sslmode=disable"

	db, err := gormstore.Open(ctx, gormstore.DriverPostgres, dsn, gormstore.DefaultPoolOptions())
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = gormstore.Close(db) }()

	uow := gormstore.NewGormUnitOfWorkFactory(db).Create()
	if err := uow.Begin(ctx); err != nil {
		log.Fatal(err)
	}
	defer func() { _ = uow.Rollback(ctx) }()

	_ = uow.OrderRepository()

	if err := uow.Commit(ctx); err != nil {
		log.Fatal(err)
	}
}

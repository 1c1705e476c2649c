package mocks

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name Store --dir ../domain/ledger --output domain/ledger --outpkg ledgermock --filename store_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name Catalog --dir ../domain/player --output domain/player --outpkg playermock --filename catalog_mock.go

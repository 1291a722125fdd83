package mocks

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name Registry --dir ../domain/team --output domain/team --outpkg teammock --filename registry_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name Repository --dir ../domain/match --output domain/match --outpkg matchmock --filename repository_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name Repository --dir ../domain/prediction --output domain/prediction --outpkg predictionmock --filename repository_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name Publisher --dir ../domain/prediction --output domain/prediction --outpkg predictionmock --filename publisher_mock.go

package main

import (
	"context"
	"time"

	"mna-assessment-service/internal/app/config"
	"mna-assessment-service/internal/app/contracts"
	"mna-assessment-service/internal/app/drivers/database"
	"mna-assessment-service/internal/app/services/core/assessments"
)

const storeTimeout = 30 * time.Second

// openAssessmentUsecase wires the usecase to the store only. Idempotency,
// events and object storage stay nil. The returned func disconnects the client.
func openAssessmentUsecase() (contracts.AssessmentUsecase, func()) {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	client := database.NewMongoDB(driverConfig)
	mongoDatabase := client.Database(driverConfig.MongoDB.DbName)
	repository := assessments.NewAssessmentMongoRepository(mongoDatabase, driverConfig.MongoDB.CollectionName)

	usecase := assessments.NewAssessmentUsecase(
		repository,
		nil,
		nil,
		nil,
		internalConfig,
		config.LoadLocation(internalConfig),
		newCLILogger(),
	)

	closeFn := func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		client.Disconnect(ctx)
	}
	return usecase, closeFn
}

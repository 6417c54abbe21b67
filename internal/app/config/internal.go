package config

type InternalConfig struct {
	App        App
	Assessment AppAssessment
	Minio      AppMinio
	RabbitMQ   AppRabbitMQ
}

type App struct {
	Env                        string
	Port                       string
	Version                    string
	Address                    string
	Timezone                   string
	EndpointPrefix             string
	CORSAllowedOrigins         []string
	MaxRequests                int
	ShutdownTimeoutInSeconds   int
	RequestTimeoutInSeconds    int
	RequestBodyLimitInMegabyte int
}

type AppAssessment struct {
	// StrictAnswers rejects submissions carrying answer codes the
	// questionnaire does not know instead of scoring them as 0.
	StrictAnswers           bool
	IdempotencyTTLInMinutes int
}

type AppMinio struct {
	BucketName                               string
	MinioPreSignedUrlObjectExpiryTimeInHours int
}

type AppRabbitMQ struct {
	AssessmentEventQueue string
}

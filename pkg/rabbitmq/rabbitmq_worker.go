package rabbitmq

// WorkerService is a long-running background job started by the application.
type WorkerService interface {
	GetServiceName() string
	StartService()
	StopService()
}

package rabbitmq

// Имена обменника и маршрутов конвейера уведомлений о счетах.
const (
	AlertsExchange  = "alerts"
	DueRoutingKey   = "due"
	DueAlertsQueue  = "alerts.due"
)

// QueueConfig описывает очередь и её ключ маршрутизации.
type QueueConfig struct {
	QueueName  string
	RoutingKey string
}

// GetAlertQueues возвращает очереди конвейера уведомлений.
func GetAlertQueues() []QueueConfig {
	return []QueueConfig{
		{QueueName: DueAlertsQueue, RoutingKey: DueRoutingKey},
	}
}

package rabbitmq

import (
	"fmt"

	"github.com/streadway/amqp"
)

// SetupChannel открывает канал, объявляет обменник уведомлений
// и привязывает к нему переданные очереди.
func SetupChannel(conn *amqp.Connection, queues []QueueConfig) (*amqp.Channel, error) {
	const op = "rabbitmq.SetupChannel"
	ch, err := conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	err = ch.ExchangeDeclare(
		AlertsExchange,
		"direct",
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	for _, q := range queues {
		_, err = ch.QueueDeclare(
			q.QueueName,
			true,
			false,
			false,
			false,
			nil,
		)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		err = ch.QueueBind(q.QueueName, q.RoutingKey, AlertsExchange, false, nil)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
	}
	return ch, nil
}

package rabbitmq

import (
	"encoding/json"
	"fmt"

	"github.com/streadway/amqp"
)

// PublishMessage сериализует message в JSON и публикует его в exchange
// с заданным ключом маршрутизации. Сообщения помечаются как persistent,
// чтобы уведомления о платежах переживали перезапуск брокера.
func PublishMessage(ch *amqp.Channel, exchange, routingKey string, message any) error {
	const op = "rabbitmq.PublishMessage"

	body, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("%s: marshal message: %w", op, err)
	}

	publishing := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Body:         body,
	}
	if err := ch.Publish(exchange, routingKey, false, false, publishing); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

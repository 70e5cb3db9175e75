package rabbitmq

// QueueConfig описывает очередь и ключ маршрутизации для привязки к обменнику.
type QueueConfig struct {
	QueueName  string
	RoutingKey string
}

// TaskDueQueue очередь с напоминаниями о задачах, срок которых истекает завтра.
const TaskDueQueue = "notification.task_due"

// TaskDueRoutingKey ключ маршрутизации напоминаний о сроках задач.
const TaskDueRoutingKey = "task_due"

// GetNotificationQueues возвращает очереди уведомлений, которые объявляет сервис.
func GetNotificationQueues() []QueueConfig {
	return []QueueConfig{
		{QueueName: TaskDueQueue, RoutingKey: TaskDueRoutingKey},
	}
}

package pubsub

import (
	"strconv"

	"storefront/internal/domain/entity"
)

// eventAttributes are the routing attributes every provider attaches to a message.
func eventAttributes(event *entity.OrderEvent) map[string]string {
	attributes := map[string]string{
		"event_type": string(event.Type),
		"source":     string(event.Source),
	}
	if event.OrderID != 0 {
		attributes["order_id"] = strconv.FormatInt(event.OrderID, 10)
	}
	if event.GatewayOrderID != "" {
		attributes["gateway_order_id"] = event.GatewayOrderID
	}
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}

	return attributes
}

// eventKey orders messages of one order attempt on a partition.
func eventKey(event *entity.OrderEvent) string {
	if event.GatewayOrderID != "" {
		return event.GatewayOrderID
	}

	return strconv.FormatInt(event.OrderID, 10)
}

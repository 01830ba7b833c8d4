package redis

import "fmt"

const ns = "skybook:v1"

func KeyIdemReserve(flightID int64, idemKey string) string {
	return fmt.Sprintf("%s:idem:reserve:%d:%s", ns, flightID, idemKey)
}

func KeyRateLimit(scope, id string) string {
	return fmt.Sprintf("%s:rl:%s:%s", ns, scope, id)
}

func ChannelFlightsChanged() string {
	return ns + ":flights:changed"
}

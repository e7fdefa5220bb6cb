package main

import (
	"fmt"
	"log"
	"math"
	"math/rand"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

var maxDevices int = 1000
var httpHostPort string = "127.0.0.1:1080"

var locations = []string{"Lab", "Roof", "Basement", "Field Station", "Garage"}

var rnd *rand.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))

func main() {
	deviceIDs := make([]string, maxDevices)
	for i := 0; i < maxDevices; i++ {
		deviceIDs[i] = uuid.NewString()
	}
	fmt.Printf("generated %v device IDs\n", maxDevices)

	resp, err := http.Get(fmt.Sprintf("http://%s/healthz", httpHostPort))
	if err != nil {
		log.Fatal("Failed to connect to HTTP server:", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		log.Fatal("HTTP server not available")
	}

	fmt.Printf("http server verified\n")

	conns := make([]*websocket.Conn, maxDevices)

	var startTime time.Time
	var usedTime time.Duration

	startTime = time.Now()
	wg := sync.WaitGroup{}
	for i := 0; i < maxDevices; i++ {
		i := i
		wg.Add(1)
		go func() {
			conns[i] = connectAndRegister(deviceIDs[i])
			fmt.Printf("\rregistered device %v", i)
			wg.Done()
		}()
	}
	wg.Wait()
	usedTime = time.Since(startTime)

	fmt.Printf(
		"\rregistered %v devices: used time=%v seconds, throughput=%v action/second\n",
		maxDevices, usedTime.Seconds(), float64(maxDevices)/usedTime.Seconds(),
	)

	startTime = time.Now()
	wg = sync.WaitGroup{}
	for i := 0; i < maxDevices; i++ {
		i := i
		wg.Add(1)
		go func() {
			doAction(deviceIDs[i], conns[i])
			wg.Done()
		}()
	}
	wg.Wait()
	usedTime = time.Since(startTime)

	fmt.Printf(
		"\n\rdid actions for %v devices: used time=%v seconds, throughput=%v action/second\n",
		maxDevices, usedTime.Seconds(), float64(maxDevices*3)/usedTime.Seconds(),
	)

	for _, conn := range conns {
		_ = conn.Close()
	}
}

func rndFloat64(min, max float64, decimal int) float64 {
	val := min + rnd.Float64()*(max-min)
	multiplier := float64(math.Pow10(decimal))
	return float64(math.Round(float64(val)*float64(multiplier))) / multiplier
}

func connectAndRegister(deviceID string) *websocket.Conn {
	conn, _, err := websocket.DefaultDialer.Dial(fmt.Sprintf("ws://%s/ws", httpHostPort), nil)
	if err != nil {
		panic(err)
	}

	// drain acks and broadcasts so the hub's writes never back up
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	err = conn.WriteJSON(map[string]any{
		"type":      "device_register",
		"device_id": deviceID,
		"location":  locations[rnd.Int31n(int32(len(locations)))],
	})
	if err != nil {
		panic(err)
	}

	return conn
}

func doAction(deviceID string, conn *websocket.Conn) {
	actions := []func(){
		genSendSampleAction(deviceID, conn),
		genHeartbeatAction(deviceID, conn),
		genStatusUpdateAction(deviceID, conn),
	}
	actionNames := []string{
		"SendSample",
		"Heartbeat",
		"StatusUpdate",
	}
	rnd.Shuffle(len(actions), func(i, j int) {
		actions[i], actions[j] = actions[j], actions[i]
		actionNames[i], actionNames[j] = actionNames[j], actionNames[i]
	})
	for index, action := range actions {
		action()
		fmt.Printf("\rexecuted action %v for device %v", actionNames[index], deviceID)
		time.Sleep(time.Duration(100+rnd.Int31n(1000)) * time.Millisecond)
	}
}

func genSendSampleAction(deviceID string, conn *websocket.Conn) func() {
	return func() {
		ax := rndFloat64(-1.0, 1.0, 3)
		ay := rndFloat64(-1.0, 1.0, 3)
		az := rndFloat64(-1.0, 1.0, 3)
		if rnd.Int31n(50) == 0 {
			// rare strong shake to exercise the alert path
			ax = rndFloat64(4.0, 8.0, 3)
			ay = rndFloat64(4.0, 8.0, 3)
			az = rndFloat64(4.0, 8.0, 3)
		}

		err := conn.WriteJSON(map[string]any{
			"type":      "sensor_data",
			"device_id": deviceID,
			"timestamp": time.Now().UnixMilli(),
			"ax":        ax,
			"ay":        ay,
			"az":        az,
			"gx":        rndFloat64(-0.5, 0.5, 3),
			"gy":        rndFloat64(-0.5, 0.5, 3),
			"gz":        rndFloat64(-0.5, 0.5, 3),
		})
		if err != nil {
			fmt.Printf("\nerror: %v\n", err)
		}
	}
}

func genHeartbeatAction(deviceID string, conn *websocket.Conn) func() {
	return func() {
		err := conn.WriteJSON(map[string]any{
			"type":      "heartbeat",
			"device_id": deviceID,
		})
		if err != nil {
			fmt.Printf("\nerror: %v\n", err)
		}
	}
}

func genStatusUpdateAction(deviceID string, conn *websocket.Conn) func() {
	return func() {
		err := conn.WriteJSON(map[string]any{
			"type":            "status_update",
			"device_id":       deviceID,
			"battery":         rndFloat64(0.0, 100.0, 2),
			"signal_strength": rndFloat64(-90.0, -30.0, 2),
			"free_heap":       102400 + rnd.Int31n(1000000),
		})
		if err != nil {
			fmt.Printf("\nerror: %v\n", err)
		}
	}
}

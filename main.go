/*
Package main
File: main.go
Description: Server entry point. Initializes the mission, the real-time
WebSocket hub, and runs the tick loop that keeps the rover's clock moving.
*/

package main

import (
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/everforgeworks/regolith-rover/internal/api"
	"github.com/everforgeworks/regolith-rover/internal/game"
)

func main() {
	seed := flag.Int64("seed", 0, "mission seed (0 = derive from clock)")
	cfgPath := flag.String("config", "mission.yaml", "tuning configuration file")
	addr := flag.String("addr", ":8081", "listen address")
	tickRate := flag.Float64("tickrate", 1.0, "mission hours simulated per real second")
	flag.Parse()

	// 1. Load the tuning configuration (compiled defaults if the file is absent)
	cfg, err := game.LoadConfig(*cfgPath)
	if err != nil {
		log.Fatalf("Config Fail: %v", err)
	}

	// 2. Generate the surface and deploy the rover
	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	log.Printf("Generating surface for seed %d...", *seed)
	mission := game.NewMission(*seed, cfg)

	// 3. Initialize and start the Real-Time WebSocket Hub
	hub := api.NewHub()
	go hub.Run()

	// 4. THE MISSION HEARTBEAT
	// Each tick advances the mission clock one hour and pushes a pulse to
	// every connected console.
	loop := game.NewLoop(mission, *tickRate, hub.PushPulse)
	go loop.Run()

	server := api.NewServer(mission, loop)

	// 5. Hot-reload logic: SIGHUP reloads tuning and restarts the campaign
	// on a fresh seed without bouncing the process.
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGHUP)
		for {
			<-sigChan
			log.Println("SIGNAL: Resetting mission...")
			newCfg, err := game.LoadConfig(*cfgPath)
			if err != nil {
				log.Printf("Config reload failed, keeping old tuning: %v", err)
				newCfg = cfg
			}
			newSeed := time.Now().UnixNano()
			fresh := game.NewMission(newSeed, newCfg)
			server.SetMission(fresh)
			loop.SetMission(fresh)
			// A reset always starts the new campaign with a live clock,
			// even if the old one was paused.
			loop.Resume()
			log.Printf("Mission reset on seed %d", newSeed)
		}
	}()

	// 6. Setup Router and Handlers
	mux := http.NewServeMux()
	server.Register(mux)

	// Real-Time WebSocket Endpoint
	mux.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		api.ServeWs(hub, w, r)
	})

	// 7. Start the Server
	log.Printf("REGOLITH ROVER Server live on %s", *addr)
	log.Printf("Real-time Hub: Online")

	if err := http.ListenAndServe(*addr, corsMiddleware(mux)); err != nil {
		log.Fatal(err)
	}
}

// corsMiddleware lets the desktop client talk to the server across domains.
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

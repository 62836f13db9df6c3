package networkdetect

import (
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/go-ping/ping"
	"golang.org/x/net/context"

	"github.com/egaotan/arbitrage-bot/config"
	"github.com/egaotan/arbitrage-bot/dingsdk"
	"github.com/egaotan/arbitrage-bot/utils"
)

var (
	ProbeInterval  = 30 * time.Second
	ProbeCount     = 3
	AlertThreshold = 200 * time.Millisecond
	AlertCooldown  = int64(5 * 60)
)

// NetworkDetector probes the latency of every usable venue endpoint and
// alerts through the webhook when a venue degrades past the threshold.
type NetworkDetector struct {
	ctx        context.Context
	wg         sync.WaitGroup
	logger     *log.Logger
	dsdk       *dingsdk.DingSdk
	endpoints  map[string]string
	notifyTime map[string]int64
}

func NewNetworkDetector(ctx context.Context, venues []*config.Venue, dsdk *dingsdk.DingSdk) *NetworkDetector {
	nd := &NetworkDetector{
		ctx:        ctx,
		logger:     utils.NewLog(config.LogPath, config.NetworkLog),
		dsdk:       dsdk,
		endpoints:  make(map[string]string),
		notifyTime: make(map[string]int64),
	}
	for _, venue := range venues {
		if venue.Endpoint == "" {
			continue
		}
		nd.endpoints[venue.Name] = hostOf(venue.Endpoint)
	}
	return nd
}

func hostOf(endpoint string) string {
	address := endpoint
	if index := strings.Index(address, "://"); index >= 0 {
		address = address[index+3:]
	}
	if index := strings.LastIndex(address, ":"); index >= 0 {
		address = address[:index]
	}
	return address
}

func (nd *NetworkDetector) Start() {
	nd.wg.Add(1)
	go nd.probe()
}

func (nd *NetworkDetector) Stop() {
	nd.wg.Wait()
}

func (nd *NetworkDetector) probe() {
	defer nd.wg.Done()
	ticker := time.NewTicker(ProbeInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			for name, address := range nd.endpoints {
				nd.probeOne(name, address)
			}
		case <-nd.ctx.Done():
			return
		}
	}
}

func (nd *NetworkDetector) probeOne(name, address string) {
	pinger, err := ping.NewPinger(address)
	if err != nil {
		nd.logger.Printf("pinger for %s (%s) err: %v", name, address, err)
		return
	}
	pinger.Count = ProbeCount
	pinger.Timeout = 10 * time.Second
	if err := pinger.Run(); err != nil {
		nd.logger.Printf("ping %s (%s) err: %v", name, address, err)
		return
	}
	stats := pinger.Statistics()
	nd.logger.Printf("venue %s rtt: %d ms", name, stats.AvgRtt.Milliseconds())
	if stats.AvgRtt <= AlertThreshold {
		return
	}
	now := time.Now().Unix()
	if now-nd.notifyTime[name] < AlertCooldown {
		return
	}
	nd.notifyTime[name] = now
	nd.notify(name, stats.AvgRtt)
}

func (nd *NetworkDetector) notify(name string, rtt time.Duration) {
	ttStr := time.Now().Format("2006-01-02 15:04:05")
	_, err := nd.dsdk.NotifyText(fmt.Sprintf("venue %s rtt: %d ms;\ntime: %s;", name, rtt.Milliseconds(), ttStr))
	if err != nil {
		nd.logger.Printf("notify err: %v", err)
	}
}

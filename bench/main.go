package main

import (
	"fmt"
	"log"
	"os"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
)

// Cliente de carga do fluxo pedido + pagamento: cria um pedido, paga em duas
// parcelas e confere a liquidação, medindo a latência fim a fim de cada ciclo.

type orderCreated struct {
	OrderID    int64  `json:"order_id"`
	TotalCents int64  `json:"total_cents"`
	Status     string `json:"status"`
}

type orderDetail struct {
	Status         string `json:"status"`
	PaidCents      int64  `json:"paid_cents"`
	RemainingCents int64  `json:"remaining_cents"`
}

func main() {
	baseURL := getEnv("API_URL", "http://localhost:8080")
	totalOrders := getEnvInt("BENCH_ORDERS", 50)
	concurrency := getEnvInt("BENCH_CONCURRENCY", 5)

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(10 * time.Second).
		SetHeader("Content-Type", "application/json")

	log.Printf("🚀 Running %d order+payment cycles against %s (concurrency %d)", totalOrders, baseURL, concurrency)

	jobs := make(chan int)
	results := make(chan time.Duration, totalOrders)
	var failures int64
	var mu sync.Mutex
	var wg sync.WaitGroup

	for w := 0; w < concurrency; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range jobs {
				elapsed, err := runCycle(client)
				if err != nil {
					mu.Lock()
					failures++
					mu.Unlock()
					log.Printf("❌ cycle failed: %v", err)
					continue
				}
				results <- elapsed
			}
		}()
	}

	start := time.Now()
	for i := 0; i < totalOrders; i++ {
		jobs <- i
	}
	close(jobs)
	wg.Wait()
	close(results)

	latencies := make([]time.Duration, 0, totalOrders)
	for d := range results {
		latencies = append(latencies, d)
	}

	report(latencies, failures, time.Since(start))
}

// runCycle cria um pedido, paga em duas parcelas e valida o status final
func runCycle(client *resty.Client) (time.Duration, error) {
	start := time.Now()

	var created orderCreated
	resp, err := client.R().
		SetBody(map[string]any{
			"customer_id": 1,
			"items": []map[string]any{
				{"product_id": 1, "quantity": 2},
				{"product_id": 2, "quantity": 1},
			},
		}).
		SetResult(&created).
		Post("/api/orders")
	if err != nil {
		return 0, fmt.Errorf("create order: %w", err)
	}
	if resp.StatusCode() != 201 {
		return 0, fmt.Errorf("create order: unexpected status %d: %s", resp.StatusCode(), resp.String())
	}

	firstInstallment := created.TotalCents / 2
	if firstInstallment > 0 {
		if err := pay(client, created.OrderID, "PIX", firstInstallment); err != nil {
			return 0, err
		}
	}
	if err := pay(client, created.OrderID, "CARD", created.TotalCents-firstInstallment); err != nil {
		return 0, err
	}

	var detail orderDetail
	resp, err = client.R().
		SetResult(&detail).
		Get("/api/orders/" + strconv.FormatInt(created.OrderID, 10))
	if err != nil {
		return 0, fmt.Errorf("get order: %w", err)
	}
	if resp.StatusCode() != 200 {
		return 0, fmt.Errorf("get order: unexpected status %d", resp.StatusCode())
	}
	if detail.Status != "PAID" || detail.RemainingCents != 0 {
		return 0, fmt.Errorf("order %d not settled: status=%s remaining=%d", created.OrderID, detail.Status, detail.RemainingCents)
	}

	return time.Since(start), nil
}

func pay(client *resty.Client, orderID int64, method string, amountCents int64) error {
	resp, err := client.R().
		SetBody(map[string]any{
			"order_id":     orderID,
			"method":       method,
			"amount_cents": amountCents,
		}).
		Post("/api/payments")
	if err != nil {
		return fmt.Errorf("pay order %d: %w", orderID, err)
	}
	if resp.StatusCode() != 200 {
		return fmt.Errorf("pay order %d: unexpected status %d: %s", orderID, resp.StatusCode(), resp.String())
	}
	return nil
}

func report(latencies []time.Duration, failures int64, elapsed time.Duration) {
	if len(latencies) == 0 {
		log.Fatalf("❌ All %d cycles failed", failures)
	}

	sort.Slice(latencies, func(i, j int) bool { return latencies[i] < latencies[j] })

	var total time.Duration
	for _, d := range latencies {
		total += d
	}

	p := func(q float64) time.Duration {
		idx := int(q * float64(len(latencies)-1))
		return latencies[idx]
	}

	log.Printf("✅ %d cycles in %s (%d failures)", len(latencies), elapsed.Round(time.Millisecond), failures)
	log.Printf("   avg=%s p50=%s p95=%s p99=%s max=%s",
		(total / time.Duration(len(latencies))).Round(time.Millisecond),
		p(0.50).Round(time.Millisecond),
		p(0.95).Round(time.Millisecond),
		p(0.99).Round(time.Millisecond),
		latencies[len(latencies)-1].Round(time.Millisecond),
	)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil && n > 0 {
			return n
		}
	}
	return defaultValue
}

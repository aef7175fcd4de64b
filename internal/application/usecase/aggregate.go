package usecase

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/diillson/aws-cost-report/internal/domain/entity"
)

// defaultMaxServiceCost é o denominador das barras quando não há serviços.
const defaultMaxServiceCost = 1.0

// AggregateServiceCosts converte as linhas agrupadas por serviço em um resumo:
// descarta valores <= 0, soma o total, ordena de forma decrescente (estável)
// e calcula o maior custo usado como escala das barras.
func AggregateServiceCosts(lines []entity.CostLine) (entity.CostSummary, error) {
	var summary entity.CostSummary
	services := make([]entity.ServiceCost, 0, len(lines))

	for _, line := range lines {
		amount, err := parseAmount(line)
		if err != nil {
			return entity.CostSummary{}, err
		}
		if amount <= 0 {
			continue
		}
		services = append(services, entity.ServiceCost{ServiceName: line.Key, Cost: amount})
		summary.Total += amount
	}

	sort.SliceStable(services, func(i, j int) bool {
		return services[i].Cost > services[j].Cost
	})

	summary.Services = services
	summary.MaxServiceCost = defaultMaxServiceCost
	if len(services) > 0 {
		summary.MaxServiceCost = services[0].Cost
	}

	return summary, nil
}

// DailyCost retorna o valor do primeiro bucket diário, ou 0 quando o
// Cost Explorer ainda não tem dados para o período.
func DailyCost(buckets []entity.CostLine) (float64, error) {
	if len(buckets) == 0 {
		return 0, nil
	}
	return parseAmount(buckets[0])
}

// ForecastCost interpreta o valor total da previsão.
func ForecastCost(line entity.CostLine) (float64, error) {
	return parseAmount(line)
}

func parseAmount(line entity.CostLine) (float64, error) {
	amount, err := strconv.ParseFloat(strings.TrimSpace(line.Amount), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q for %q: %w", line.Amount, line.Key, err)
	}
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return 0, fmt.Errorf("invalid amount %q for %q: not a finite number", line.Amount, line.Key)
	}
	return amount, nil
}

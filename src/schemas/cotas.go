package schemas

import "cotas/src/models"

// CotaFilter carries the optional listing filters. Zero values mean "no
// filter"; "todos" is the explicit no-filter sentinel sent by the frontend.
type CotaFilter struct {
	TipoBem         string  `json:"tipo_bem"`
	Disponibilidade string  `json:"disponibilidade"`
	ValorCredito    float64 `json:"valor_credito"`
	ValorEntrada    float64 `json:"valor_entrada"`
	ValorParcela    float64 `json:"valor_parcela"`
}

const (
	FiltroTodos       = "todos"
	FiltroDisponiveis = "disponiveis"
	FiltroReservado   = "reservado"
)

// CotaWithAdmin is a cota row with its administradora name resolved.
type CotaWithAdmin struct {
	models.Cota
	Admin string `json:"admin"`
}

type DetalhesCotaResponse struct {
	Cota            CotaWithAdmin `json:"cota"`
	DataProxParcela string        `json:"data_prox_parcela"`
	Comissao        float64       `json:"comissao"`
	Entradaporcem   float64       `json:"entradaporcem"`
	CreditoReal     float64       `json:"credito_real"`
	ValorFinal      float64       `json:"valor_final"`
	Taxa            float64       `json:"taxa"`
	Taxaporcem      float64       `json:"taxaporcem"`
	JMensal         float64       `json:"JMensal"`
	JAnual          float64       `json:"JAnual"`
}

type SomarCotasRequest struct {
	CotasIDs []int `json:"cotas_ids"`
}

// CotaDetalhe is a per-cota line item of an aggregate valuation, in request
// order.
type CotaDetalhe struct {
	Codigo       string  `json:"codigo"`
	Credito      float64 `json:"credito"`
	Categoria    string  `json:"categoria"`
	Parcelas     int     `json:"parcelas"`
	ValorParcela float64 `json:"valor_parcela"`
	Saldo        float64 `json:"saldo"`
	Entrada      float64 `json:"entrada"`
}

type SomarCotasResponse struct {
	Admin              string        `json:"admin"`
	Categoria          string        `json:"categoria"`
	TotalCredito       float64       `json:"total_credito"`
	TotalEntrada       float64       `json:"total_entrada"`
	TotalComissao      float64       `json:"total_comissao"`
	TotalEntradaporcem float64       `json:"total_entradaporcem"`
	TotalSaldo         float64       `json:"total_saldo"`
	TotalParcelas      int           `json:"total_parcelas"`
	MediaParcelas      int           `json:"media_parcelas"`
	MediaValorParcela  float64       `json:"media_valor_parcela"`
	MenorVencimento    int           `json:"menor_vencimento"`
	CreditoReal        float64       `json:"credito_real"`
	ValorFinal         float64       `json:"valor_final"`
	Taxa               float64       `json:"taxa"`
	Taxaporcem         float64       `json:"taxaporcem"`
	JMensal            float64       `json:"JMensal"`
	JAnual             float64       `json:"JAnual"`
	Detalhes           []CotaDetalhe `json:"detalhes"`
	LinkShare          string        `json:"link_share"`
	Disponivel         bool          `json:"disponivel"`
}

type IniciarNegociacaoRequest struct {
	CotasIDs    []int  `json:"cotas_ids"`
	TipoContato string `json:"tipo_contato"`
}

// NegociacaoCota is the abbreviated per-cota record of a negotiation summary.
type NegociacaoCota struct {
	Codigo       string  `json:"codigo"`
	Categoria    string  `json:"categoria"`
	Credito      float64 `json:"credito"`
	Entrada      float64 `json:"entrada"`
	Parcelas     int     `json:"parcelas"`
	ValorParcela float64 `json:"valor_parcela"`
}

type IniciarNegociacaoResponse struct {
	TipoContato     string           `json:"tipo_contato"`
	Admin           string           `json:"admin"`
	QuantidadeCotas int              `json:"quantidade_cotas"`
	Cotas           []NegociacaoCota `json:"cotas"`
	TotalCredito    float64          `json:"total_credito"`
	TotalEntrada    float64          `json:"total_entrada"`
	Disponivel      bool             `json:"disponivel"`
}

type HealthResponse struct {
	Status           string `json:"status"`
	BackendConnected bool   `json:"backend_connected"`
	Timestamp        string `json:"timestamp"`
	CacheSize        int    `json:"cache_size"`
}

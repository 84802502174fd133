package httphandler

type (
	Product struct {
		ID          int     `json:"id"`
		Name        string  `json:"name"`
		Price       float64 `json:"price"`
		Country     string  `json:"country"`
		Type        string  `json:"type"`
		Brand       string  `json:"brand"`
		Description string  `json:"description"`
		ImageID     string  `json:"image_id"`
		ComingSoon  bool    `json:"coming_soon"`
	}

	Facets struct {
		Countries []string `json:"countries"`
		Types     []string `json:"types"`
		MaxPrice  float64  `json:"max_price"`
	}
)

type (
	CartLine struct {
		Product  Product `json:"product"`
		Quantity int     `json:"quantity"`
	}

	Cart struct {
		Lines      []CartLine `json:"lines"`
		ItemCount  int        `json:"item_count"`
		TotalPrice float64    `json:"total_price"`
	}

	AddCartItem struct {
		ProductID int `json:"product_id"`
		Quantity  int `json:"quantity"`
	}

	UpdateCartItem struct {
		Quantity int `json:"quantity"`
	}
)

type (
	GenerateRequest struct {
		Prompt string `json:"prompt"`
	}

	Solution struct {
		Original string `json:"original"`
		Summary  string `json:"summary"`
	}

	GenerateResponse struct {
		Solutions []Solution `json:"solutions"`
		Error     *string    `json:"error"`
	}

	ImproveRequest struct {
		Prompt   string `json:"prompt"`
		Solution string `json:"solution"`
		Feedback string `json:"feedback"`
	}

	ImproveResponse struct {
		ImprovedSolution *string `json:"improvedSolution"`
		Error            *string `json:"error"`
	}

	ChatRequest struct {
		Message string `json:"message"`
	}

	ChatResponse struct {
		Response *string `json:"response"`
		Error    *string `json:"error"`
	}

	ChatTopic struct {
		Key      string `json:"key"`
		Question string `json:"question"`
	}

	ChatTopicCategory struct {
		Category string      `json:"category"`
		Topics   []ChatTopic `json:"topics"`
	}
)

type (
	Translation struct {
		Lang  string `json:"lang"`
		Key   string `json:"key"`
		Value string `json:"value"`
	}

	Language struct {
		Code string `json:"code"`
		Name string `json:"name"`
		Flag string `json:"flag"`
	}
)

package genai

// Request and response payloads for the hosted generation gateway.
// Every struct is validated at the boundary; an invalid payload in
// either direction is treated as a call failure.

type (
	generateRequest struct {
		Prompt string `json:"prompt" validate:"required,min=10"`
	}

	generateResponse struct {
		Solutions []string `json:"solutions" validate:"required,dive,required"`
	}

	summarizeRequest struct {
		Solutions []string `json:"solutions" validate:"required,min=1,dive,required"`
	}

	summarizeResponse struct {
		Summaries []string `json:"summaries" validate:"required"`
	}

	improveRequest struct {
		Prompt            string `json:"prompt" validate:"required"`
		GeneratedSolution string `json:"generatedSolution" validate:"required"`
		Feedback          string `json:"feedback" validate:"required"`
	}

	improveResponse struct {
		ImprovedSolution string `json:"improvedSolution" validate:"required"`
	}

	chatRequest struct {
		Message string `json:"message" validate:"required"`
	}

	chatResponse struct {
		Response string `json:"response" validate:"required"`
	}
)

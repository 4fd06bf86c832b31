package v1

import (
	"net/http"

	"ai-match-connect/internal/delivery/http/response"
	"ai-match-connect/internal/domain"
	"ai-match-connect/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type MatchHandler struct {
	matchUC domain.MatchUsecase
}

func NewMatchHandler(protected *gin.RouterGroup, matchUC domain.MatchUsecase) {
	handler := &MatchHandler{matchUC: matchUC}

	ai := protected.Group("/ai-recruiter")
	{
		ai.POST("/search", handler.Search)
	}
}

// Search godoc
// @Summary      AI-screen candidates against a job posting
// @Description  Forwards the posting's description and the selected candidates' resume texts to the matching engine and relays its verdict verbatim
// @Tags         ai-recruiter
// @Accept       json
// @Produce      json
// @Param        body  body      domain.AISearchInput  true  "Search JSON"
// @Success      200  {object}  object
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      502  {object}  response.Response
// @Failure      503  {object}  response.Response
// @Router       /ai-recruiter/search [post]
// @Security     BearerAuth
func (h *MatchHandler) Search(c *gin.Context) {
	var in domain.AISearchInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	verdict, err := h.matchUC.Search(c.Request.Context(), in)
	if err != nil {
		c.Error(err)
		return
	}

	// The engine's verdict is relayed untouched, not wrapped in the
	// standard envelope.
	response.Raw(c, http.StatusOK, verdict)
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const errInvalidIDPref = "invalid user id: "

// userURI binds the :id segment. Anything that is not a uint32 fails binding.
type userURI struct {
	ID uint32 `uri:"id"`
}

// @Summary      List users
// @Tags         users
// @Produce      json
// @Success      200  {array}   models.User
// @Router       /api/users [get]
func (h *Handler) listUsers(c *gin.Context) {
	c.JSON(http.StatusOK, h.services.List(c.Request.Context()))
}

// @Summary      Get user by id
// @Description  Any id yields a synthesized record; there is no existence check.
// @Tags         users
// @Produce      json
// @Param        id   path      int  true  "User ID"  minimum(0)  maximum(4294967295)
// @Success      200  {object}  models.User
// @Failure      400  {object}  map[string]string
// @Router       /api/users/{id} [get]
func (h *Handler) getUser(c *gin.Context) {
	var uri userURI
	if err := c.ShouldBindUri(&uri); err != nil {
		if h.log != nil {
			h.log.Infow("user_bad_request_id", "id", c.Param("id"), "request_id", requestID(c), "err", err)
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidIDPref + err.Error()})
		return
	}
	c.JSON(http.StatusOK, h.services.Get(c.Request.Context(), uri.ID))
}

package server

import (
	"github.com/gofiber/fiber/v2"
)

// SearchUsers returns a page of active users whose username contains the
// query, ordered alphabetically.
func (s *Server) SearchUsers(c *fiber.Ctx) error {
	query := c.Query("q")
	page := c.QueryInt("page", 1)
	pageSize := c.QueryInt("page_size", s.config.PaginationLimit)

	result, err := s.userService.SearchByUsername(c.UserContext(), query, page, pageSize)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(result)
}

package server

import (
	"github.com/gofiber/fiber/v2"

	"chirp/internal/models"
	"chirp/internal/service"
)

// createTweetRequest is the payload for posting a tweet. TaggedUserIDs being
// absent selects inline mode (mentions are parsed out of the content); an
// explicit list, including an empty one, disables mention parsing.
type createTweetRequest struct {
	Content       string  `json:"content"`
	TaggedUserIDs *[]uint `json:"tagged_user_ids"`
}

// CreateTweet posts a new tweet for the authenticated user.
func (s *Server) CreateTweet(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return respondError(c, models.NewUnauthorizedError("Authentication required"))
	}

	var req createTweetRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	var result *service.CreateTweetResult
	var err error
	if req.TaggedUserIDs != nil {
		result, err = s.tweetService.CreateWithTags(c.UserContext(), userID, req.Content, *req.TaggedUserIDs)
	} else {
		result, err = s.tweetService.CreateWithInlineTags(c.UserContext(), userID, req.Content)
	}
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(result)
}

// GetGlobalFeed returns one page of all tweets, oldest first.
func (s *Server) GetGlobalFeed(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	pageSize := c.QueryInt("page_size", s.config.PaginationLimit)

	feed, err := s.tweetService.GetGlobalFeed(c.UserContext(), page, pageSize)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(feed)
}

// GetUserTweets returns the tweets a user authored and the tweets they were
// tagged in. Users may only view their own.
func (s *Server) GetUserTweets(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return respondError(c, models.NewUnauthorizedError("Authentication required"))
	}

	requestedID, err := c.ParamsInt("id")
	if err != nil || requestedID < 1 {
		return respondError(c, models.NewValidationError("Invalid user id"))
	}

	active, err := s.userService.IsActive(c.UserContext(), userID)
	if err != nil {
		return respondError(c, err)
	}
	if !active || uint(requestedID) != userID {
		return respondError(c, models.NewForbiddenError("You can only view your own tweets"))
	}

	tweets, err := s.tweetService.GetTweetsForUser(c.UserContext(), userID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(tweets)
}

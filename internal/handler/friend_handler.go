package handler

import (
	"net/http"

	"cinematch/backend/internal/database"
	"cinematch/backend/internal/service"

	"github.com/gin-gonic/gin"
)

// SendFriendRequest godoc
// @Summary      Send or accept a friend request
// @Description  Sends a friend request to the target user. If the target had already requested the viewer, both links become confirmed.
// @Tags         friends
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Target User ID"
// @Success      200  {object}  map[string]string "{"message": "Friend request recorded"}"
// @Failure      400  {object}  ErrorResponse "Cannot befriend yourself"
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse "Target user not found"
// @Router       /users/{id}/friends [post]
func SendFriendRequest(c *gin.Context) {
	viewerID, _ := c.Get("userID")
	targetID, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := service.NewFriendService(database.DB).SendOrAccept(viewerID.(uint), targetID); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Friend request recorded"})
}

// RemoveFriend godoc
// @Summary      Remove a friend link
// @Description  Deletes the viewer's link to the target user, whether a pending request or a confirmed friendship. The target's own link is untouched.
// @Tags         friends
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Target User ID"
// @Success      200  {object}  map[string]string "{"message": "Friend removed"}"
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse "Target user not found"
// @Router       /users/{id}/friends [delete]
func RemoveFriend(c *gin.Context) {
	viewerID, _ := c.Get("userID")
	targetID, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := service.NewFriendService(database.DB).Remove(viewerID.(uint), targetID); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Friend removed"})
}

// GetFriends godoc
// @Summary      List a user's friends
// @Description  Returns the users a given user has linked, pending requests included, in ascending id order.
// @Tags         friends
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "User ID"
// @Success      200  {array}   UserResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /users/{id}/friends [get]
func GetFriends(c *gin.Context) {
	userID, ok := pathID(c, "id")
	if !ok {
		return
	}

	friends, err := service.NewFriendService(database.DB).ListFriends(userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	responses := make([]UserResponse, 0, len(friends))
	for _, friend := range friends {
		friend.Email = ""
		responses = append(responses, newUserResponse(friend))
	}
	c.JSON(http.StatusOK, responses)
}

// GetCommonFriends godoc
// @Summary      List common friends
// @Description  Returns the users linked by both given users, in ascending id order.
// @Tags         friends
// @Produce      json
// @Security     BearerAuth
// @Param        id      path  int  true  "User ID"
// @Param        otherId path  int  true  "Other User ID"
// @Success      200  {array}   UserResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /users/{id}/friends/common/{otherId} [get]
func GetCommonFriends(c *gin.Context) {
	userID, ok := pathID(c, "id")
	if !ok {
		return
	}
	otherID, ok := pathID(c, "otherId")
	if !ok {
		return
	}

	friends, err := service.NewFriendService(database.DB).CommonFriends(userID, otherID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	responses := make([]UserResponse, 0, len(friends))
	for _, friend := range friends {
		friend.Email = ""
		responses = append(responses, newUserResponse(friend))
	}
	c.JSON(http.StatusOK, responses)
}

package web

import (
	"html/template"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/devmukh/lost_found_system/backend/controllers"
	"github.com/devmukh/lost_found_system/backend/models"
	"github.com/devmukh/lost_found_system/backend/utils"
	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Server renders the HTML pages on top of a ListingSource.
type Server struct {
	src       ListingSource
	templates map[string]*template.Template
}

func NewServer(src ListingSource) (*Server, error) {
	templates, err := parseTemplates()
	if err != nil {
		return nil, err
	}
	return &Server{src: src, templates: templates}, nil
}

func (s *Server) Register(router *mux.Router) {
	router.HandleFunc("/my-listings", s.myListings).Methods("GET")
	router.HandleFunc("/my-listings/create", s.createListing).Methods("POST")
	router.HandleFunc("/my-listings/{id}/delete", s.deleteListing).Methods("POST")
	router.HandleFunc("/my-listings/{id}/edit", s.editListing).Methods("GET")
	router.HandleFunc("/my-listings/{id}/status", s.updateStatus).Methods("POST")
	router.HandleFunc("/listings/new", s.newListing).Methods("GET")
	router.HandleFunc("/listings/{id}", s.viewListing).Methods("GET")
}

// owner returns the authenticated user's id from the session cookie, or
// "" when nobody is signed in. An absent identity is not an error: the
// panel renders its signed-out empty state instead.
func (s *Server) owner(r *http.Request) string {
	cookie, err := r.Cookie("token")
	if err != nil {
		return ""
	}
	claims, err := utils.ValidateJWT(cookie.Value)
	if err != nil {
		log.Printf("Ignoring invalid session cookie: %v", err)
		return ""
	}
	return claims.UserID
}

type page struct {
	Title string
	Nav   Transition
}

type panelPage struct {
	page
	SignedIn bool
	Status   string
	Statuses []string
	Listings []models.ListingView
	Error    string
	Alert    string
	RetryURL string
}

type detailPage struct {
	page
	Item *models.ListingView
}

type newPage struct {
	page
	Error      string
	Form       models.Listing
	Categories []models.Category
}

type alertPage struct {
	page
	Message string
	BackURL string
}

func statusOrDefault(raw string) string {
	if models.ValidStatus(raw) {
		return raw
	}
	return models.StatusActive
}

func (s *Server) panel(r *http.Request, ownerID, status, alert string) panelPage {
	p := panelPage{
		page:     page{Title: "My listings"},
		SignedIn: ownerID != "",
		Status:   status,
		Statuses: []string{models.StatusActive, models.StatusClosed, models.StatusArchived},
		Alert:    alert,
		RetryURL: r.URL.RequestURI(),
	}
	if ownerID == "" {
		return p
	}

	items, err := s.src.ListByOwner(r.Context(), ownerID, status)
	if err != nil {
		log.Printf("Error loading listings for owner %s: %v", ownerID, err)
		p.Error = "Could not load your listings."
		return p
	}
	p.Listings = items
	return p
}

func (s *Server) myListings(w http.ResponseWriter, r *http.Request) {
	ownerID := s.owner(r)
	status := statusOrDefault(r.URL.Query().Get("status"))
	s.render(w, http.StatusOK, "my_listings", s.panel(r, ownerID, status, ""))
}

func (s *Server) deleteListing(w http.ResponseWriter, r *http.Request) {
	ownerID := s.owner(r)
	if ownerID == "" {
		http.Redirect(w, r, "/my-listings", http.StatusSeeOther)
		return
	}

	itemID := mux.Vars(r)["id"]
	status := statusOrDefault(r.FormValue("status"))

	if err := s.src.Delete(r.Context(), itemID, ownerID); err != nil {
		log.Printf("Delete failed for listing %s: %v", itemID, err)
		s.render(w, http.StatusOK, "my_listings", s.panel(r, ownerID, status, "Could not delete the listing. Please try again."))
		return
	}

	http.Redirect(w, r, "/my-listings?status="+status, http.StatusSeeOther)
}

// categories is best effort for form rendering: a failed load leaves
// the select empty instead of blocking the page.
func (s *Server) categories(r *http.Request) []models.Category {
	cats, err := s.src.Categories(r.Context())
	if err != nil {
		log.Printf("Error loading categories: %v", err)
		return nil
	}
	return cats
}

func (s *Server) newListing(w http.ResponseWriter, r *http.Request) {
	s.render(w, http.StatusOK, "listing_new", newPage{
		page:       page{Title: "Post a listing"},
		Form:       models.Listing{Kind: models.KindLost},
		Categories: s.categories(r),
	})
}

func (s *Server) createListing(w http.ResponseWriter, r *http.Request) {
	ownerID := s.owner(r)
	if ownerID == "" {
		http.Redirect(w, r, "/my-listings", http.StatusSeeOther)
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form data", http.StatusBadRequest)
		return
	}

	item := models.Listing{
		Title:       strings.TrimSpace(r.FormValue("title")),
		Description: strings.TrimSpace(r.FormValue("description")),
		Kind:        r.FormValue("kind"),
		Status:      models.StatusActive,
		Location: models.Location{
			Address:  strings.TrimSpace(r.FormValue("address")),
			District: strings.TrimSpace(r.FormValue("district")),
			Province: strings.TrimSpace(r.FormValue("province")),
		},
	}
	if raw := r.FormValue("categoryId"); raw != "" {
		objID, err := primitive.ObjectIDFromHex(raw)
		if err != nil {
			log.Printf("Ignoring invalid category id %q: %v", raw, err)
		} else {
			item.CategoryID = objID
		}
	}

	if item.Title == "" || !models.ValidKind(item.Kind) {
		s.render(w, http.StatusBadRequest, "listing_new", newPage{
			page:       page{Title: "Post a listing"},
			Error:      "A title and a lost/found choice are required.",
			Form:       item,
			Categories: s.categories(r),
		})
		return
	}

	item.ID = primitive.NewObjectID()
	item.OwnerID = ownerID
	item.CreatedAt = time.Now()
	item.MediaURLs = []string{}

	if err := s.src.Create(r.Context(), &item); err != nil {
		log.Printf("Create failed for owner %s: %v", ownerID, err)
		s.render(w, http.StatusInternalServerError, "listing_new", newPage{
			page:       page{Title: "Post a listing"},
			Error:      "Could not publish the listing. Please try again.",
			Form:       item,
			Categories: s.categories(r),
		})
		return
	}

	http.Redirect(w, r, "/my-listings", http.StatusSeeOther)
}

func (s *Server) viewListing(w http.ResponseWriter, r *http.Request) {
	itemID := mux.Vars(r)["id"]

	item, err := s.src.Get(r.Context(), itemID)
	if err != nil {
		if err == controllers.ErrItemNotFound {
			s.render(w, http.StatusNotFound, "alert", alertPage{
				page:    page{Title: "Not found"},
				Message: "That listing does not exist.",
				BackURL: "/my-listings",
			})
			return
		}
		log.Printf("Error fetching listing %s: %v", itemID, err)
		s.render(w, http.StatusInternalServerError, "alert", alertPage{
			page:    page{Title: "Error"},
			Message: "Could not load the listing.",
			BackURL: "/my-listings",
		})
		return
	}

	s.render(w, http.StatusOK, "listing_view", detailPage{
		page: page{Title: item.Title},
		Item: item,
	})
}

func (s *Server) editListing(w http.ResponseWriter, r *http.Request) {
	ownerID := s.owner(r)
	if ownerID == "" {
		http.Redirect(w, r, "/my-listings", http.StatusSeeOther)
		return
	}

	itemID := mux.Vars(r)["id"]

	item, err := s.src.Get(r.Context(), itemID)
	if err != nil || item == nil || item.OwnerID != ownerID {
		s.render(w, http.StatusNotFound, "alert", alertPage{
			page:    page{Title: "Not found"},
			Message: "That listing does not exist or is not yours.",
			BackURL: "/my-listings",
		})
		return
	}

	s.render(w, http.StatusOK, "listing_edit", detailPage{
		page: page{Title: "Edit listing"},
		Item: item,
	})
}

func (s *Server) updateStatus(w http.ResponseWriter, r *http.Request) {
	ownerID := s.owner(r)
	if ownerID == "" {
		http.Redirect(w, r, "/my-listings", http.StatusSeeOther)
		return
	}

	itemID := mux.Vars(r)["id"]
	status := r.FormValue("status")
	if !models.ValidStatus(status) {
		s.render(w, http.StatusBadRequest, "alert", alertPage{
			page:    page{Title: "Error"},
			Message: "Invalid listing status.",
			BackURL: "/my-listings",
		})
		return
	}

	if err := s.src.SetStatus(r.Context(), itemID, ownerID, status); err != nil {
		log.Printf("Status update failed for listing %s: %v", itemID, err)
		s.render(w, http.StatusOK, "alert", alertPage{
			page:    page{Title: "Error"},
			Message: "Could not update the listing. Please try again.",
			BackURL: "/my-listings",
		})
		return
	}

	http.Redirect(w, r, "/my-listings?status="+status, http.StatusSeeOther)
}

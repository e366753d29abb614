package laudo

// PageType tags one unit of pagination output.
type PageType string

const (
	PageCover            PageType = "cover"
	PageDataSheet        PageType = "dataSheet"
	PageTechnicalSummary PageType = "technicalSummary"
	PagePhotoPair        PageType = "photoPair"
)

// Page budget: every report carries exactly three front-matter pages,
// followed by photo pages holding at most two photos each.
const (
	FrontMatterPages = 3
	PhotosPerPage    = 2
)

// PageDescriptor is one derived page. Photos is populated only for
// photoPair pages and holds 1 or 2 consecutive photos from the record's
// ordered photo list; a photo page is never empty.
type PageDescriptor struct {
	PageNumber int
	Type       PageType
	Photos     []Photo
}

// Plan is the full pagination of a record. It is recomputed on every
// render and never persisted; preview and export must consume the same
// plan to stay structurally identical.
type Plan struct {
	TotalPages int
	Pages      []PageDescriptor
}

// BuildPlan computes the ordered page list for a record. The result is
// deterministic: identical record content always yields an identical
// plan. Text overflow within a page is the renderer's concern, not the
// planner's. BuildPlan never fails; a record with zero photos and empty
// fields still yields a valid 3-page plan.
func BuildPlan(r Record) Plan {
	photoPages := (len(r.Photos) + PhotosPerPage - 1) / PhotosPerPage
	total := FrontMatterPages + photoPages

	pages := make([]PageDescriptor, 0, total)
	pages = append(pages,
		PageDescriptor{PageNumber: 1, Type: PageCover},
		PageDescriptor{PageNumber: 2, Type: PageDataSheet},
		PageDescriptor{PageNumber: 3, Type: PageTechnicalSummary},
	)

	for i := 0; i < len(r.Photos); i += PhotosPerPage {
		end := i + PhotosPerPage
		if end > len(r.Photos) {
			end = len(r.Photos)
		}
		pages = append(pages, PageDescriptor{
			PageNumber: FrontMatterPages + i/PhotosPerPage + 1,
			Type:       PagePhotoPair,
			Photos:     r.Photos[i:end],
		})
	}

	return Plan{TotalPages: total, Pages: pages}
}

// ClampPage bounds a 1-based page number to [1, total]. Used by the
// on-screen pager to keep navigation inside the plan.
func ClampPage(page, total int) int {
	if page < 1 {
		return 1
	}
	if page > total {
		return total
	}
	return page
}

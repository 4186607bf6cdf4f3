package knowledge

import "fmt"

var languageSkills = map[string]bool{
	"python": true, "java": true, "javascript": true, "typescript": true,
	"go": true, "golang": true, "ruby": true, "c#": true, "c++": true,
	"rust": true, "php": true, "kotlin": true, "swift": true, "scala": true,
	"elixir": true,
}

var containerSkills = map[string]bool{
	"docker": true, "kubernetes": true, "helm": true, "containers": true,
	"container orchestration": true, "containerization": true,
}

var cloudSkills = map[string]bool{
	"aws": true, "azure": true, "gcp": true, "google cloud": true,
	"cloud": true, "cloud computing": true,
}

var mlSkills = map[string]bool{
	"machine learning": true, "deep learning": true, "tensorflow": true,
	"pytorch": true, "scikit-learn": true, "data science": true,
	"neural networks": true, "nlp": true, "computer vision": true,
}

// LearningResources returns suggested resources for closing a skill
// gap. The category is the skill-graph category of the skill, used as
// a fallback when the skill itself is not in one of the known groups.
func LearningResources(skill, category string) []string {
	switch {
	case languageSkills[skill] || languageSkills[category]:
		return []string{
			fmt.Sprintf("Work through the official %s documentation and tutorials", skill),
			fmt.Sprintf("Practice %s on coding platforms like Exercism or LeetCode", skill),
			fmt.Sprintf("Build a small project in %s to apply it in practice", skill),
		}
	case containerSkills[skill] || containerSkills[category]:
		return []string{
			"Complete the official Docker and Kubernetes getting-started guides",
			"Run a local cluster with minikube or kind and deploy a sample application",
			"Study for a container certification such as CKA or CKAD",
		}
	case cloudSkills[skill] || cloudSkills[category]:
		return []string{
			"Follow the cloud provider's free-tier hands-on labs",
			"Pursue an entry-level certification such as AWS Cloud Practitioner",
			"Migrate one of your projects to managed cloud services",
		}
	case mlSkills[skill] || mlSkills[category]:
		return []string{
			"Take an introductory machine learning course",
			"Practice on real datasets through Kaggle competitions",
			"Work through the scikit-learn or TensorFlow official tutorials",
		}
	default:
		return []string{
			fmt.Sprintf("Search for %s courses on platforms like Coursera or Udemy", skill),
			fmt.Sprintf("Read the official %s documentation", skill),
			fmt.Sprintf("Build a portfolio project that uses %s", skill),
		}
	}
}

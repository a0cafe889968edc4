package model

import "time"

// SampleProfiles returns the built-in demo profiles used to seed an empty
// or unreadable store.
func SampleProfiles() []Profile {
	now := time.Now()
	return []Profile{
		{
			ID:        "1",
			Name:      "Perfil de María García",
			Template:  DefaultTemplate(),
			CreatedAt: now,
			UpdatedAt: now,
			Data: Document{
				Basics: Basics{
					Name:    "María García López",
					Label:   "Desarrolladora Full Stack",
					Email:   "maria.garcia@email.com",
					Phone:   "+34 600 123 456",
					URL:     "https://mariagarcia.dev",
					Summary: "Desarrolladora Full Stack con más de 5 años de experiencia en tecnologías web modernas. Especializada en React, Node.js y arquitecturas escalables.",
					Location: Location{
						Address:     "Calle Mayor 123",
						PostalCode:  "28001",
						City:        "Madrid",
						CountryCode: "ES",
						Region:      "Comunidad de Madrid",
					},
					Profiles: []SocialProfile{
						{Network: "LinkedIn", Username: "mariagarcia", URL: "https://linkedin.com/in/mariagarcia"},
						{Network: "GitHub", Username: "mariagarcia", URL: "https://github.com/mariagarcia"},
					},
				},
				Work: []Work{
					{
						Name:      "TechCorp Solutions",
						Position:  "Senior Full Stack Developer",
						URL:       "https://techcorp.com",
						StartDate: "2022-03-01",
						Summary:   "Liderazgo técnico en el desarrollo de aplicaciones web escalables para clientes enterprise.",
						Highlights: []string{
							"Desarrollé una plataforma de e-commerce que incrementó las ventas en un 40%",
							"Implementé arquitectura de microservicios reduciendo el tiempo de respuesta en 60%",
						},
					},
				},
				Education: []Education{
					{
						Institution: "Universidad Politécnica de Madrid",
						URL:         "https://upm.es",
						Area:        "Ingeniería Informática",
						StudyType:   "Grado",
						StartDate:   "2015-09-01",
						EndDate:     "2019-06-30",
						Score:       "8.2/10",
						Courses:     []string{"Algoritmos y Estructuras de Datos"},
					},
				},
				Skills: []Skill{
					{Name: "Frontend", Level: "Avanzado", Keywords: []string{"React", "TypeScript", "Next.js"}},
				},
				Languages: []Language{
					{Language: "Español", Fluency: "Nativo"},
				},
				Certificates: []Certificate{
					{
						Name:   "AWS Certified Solutions Architect",
						Date:   "2023-05-15",
						Issuer: "Amazon Web Services",
						URL:    "https://aws.amazon.com/certification/",
					},
				},
				Interests: []Interest{
					{Name: "Tecnología", Keywords: []string{"Open Source"}},
				},
			},
		},
		{
			ID:        "2",
			Name:      "Portafolio de Alexandre Dubois",
			Template:  DefaultTemplate(),
			CreatedAt: now,
			UpdatedAt: now,
			Data: Document{
				Basics: Basics{
					Name:    "Alexandre Dubois",
					Label:   "Diseñador UX/UI Senior",
					Email:   "alex.dubois@email.fr",
					Phone:   "+33 6 12 34 56 78",
					URL:     "https://alexandredubois.design",
					Summary: "Diseñador UX/UI con 8 años de experiencia en la creación de interfaces intuitivas y atractivas para aplicaciones móviles y web.",
					Location: Location{
						Address:     "123 Rue de la République",
						PostalCode:  "75001",
						City:        "París",
						CountryCode: "FR",
						Region:      "Île-de-France",
					},
					Profiles: []SocialProfile{
						{Network: "LinkedIn", Username: "alexandredubois", URL: "https://linkedin.com/in/alexandredubois"},
						{Network: "Dribbble", Username: "alexdubois", URL: "https://dribbble.com/alexdubois"},
					},
				},
				Work: []Work{
					{
						Name:      "Creative Agency",
						Position:  "Lead UX/UI Designer",
						URL:       "https://creativeagency.fr",
						StartDate: "2021-01-01",
						Summary:   "Lideré el equipo de diseño en proyectos para clientes internacionales, desde la conceptualización hasta la entrega final.",
						Highlights: []string{
							"Rediseñé la aplicación móvil de un banco, mejorando la satisfacción del usuario en un 25%.",
							"Creé un sistema de diseño escalable que aceleró el proceso de desarrollo en un 40%.",
						},
					},
				},
				Education: []Education{
					{
						Institution: "Gobelins, l'école de l'image",
						URL:         "https://www.gobelins.fr",
						Area:        "Diseño Interactivo",
						StudyType:   "Máster",
						StartDate:   "2014-09-01",
						EndDate:     "2016-06-30",
						Score:       "Mención de Honor",
						Courses:     []string{"Diseño de Experiencia de Usuario", "Diseño de Interfaces"},
					},
				},
				Skills: []Skill{
					{Name: "Diseño UX/UI", Level: "Experto", Keywords: []string{"Figma", "Sketch", "Adobe XD"}},
				},
				Languages: []Language{
					{Language: "Francés", Fluency: "Nativo"},
					{Language: "Inglés", Fluency: "Profesional"},
				},
				Certificates: []Certificate{},
				Interests: []Interest{
					{Name: "Arte y Cultura", Keywords: []string{"Museos", "Cine"}},
				},
			},
		},
	}
}
